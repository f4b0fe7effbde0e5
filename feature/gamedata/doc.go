// Package gamedata finds the game installation and lists installed archives.
//
// # Install root
//
// Resolver asks each Locator in turn and keeps the first answer:
//
//  1. config: game.install_path, when set
//  2. registry: the installer's InstallPath value under HKCU (Windows only),
//     accepted only if the directory holds the game executable
//  3. steam: the Steam library whose appmanifest lists the game
//
// If none succeeds the working directory is used and a warning is logged.
//
// # Scanning
//
// Scanner collects the names of regular files directly under each configured
// data directory (GameData and GameData_20 by default). A missing directory
// is reported as ErrDataDirMissing instead of being treated as empty.
package gamedata
