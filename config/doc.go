// Package config parses doRiNA's ini-shaped configuration file: a single
// [DEFAULT] section carrying data_path, organism, version, and tissue
// (spec.md §6). There is no pack dependency for ini parsing, so this
// package scans the file by hand the way the teacher hand-scans small
// ad-hoc formats elsewhere (see DESIGN.md).
package config
