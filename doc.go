// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

/*
Package inno decodes the embedded setup metadata of Inno Setup installer
executables: the loader offset table, the versioned setup header and every
entry list (languages, messages, types, components, tasks, files, icons,
registry and run entries, data locations). Decoding is metadata-only and
works without loading the installer payload into memory.

Format revisions from 1.3.21 through 6.5.2 are supported, including ANSI and
Unicode builds and the My Inno Setup Extensions (ISX) variants. The declared
version drives every layout decision; unknown version signatures fail with
ErrUnsupportedVersion.

# Reading

Open an installer and inspect its metadata:

	r, err := inno.Open("setup.exe")
	if err != nil {
	    return err
	}
	defer r.Close()

	fmt.Println(r.Version(), r.Header().AppName)
	for _, f := range r.Files() {
	    fmt.Println(f.Destination)
	}

Decoding from memory or another random-access source:

	r, err := inno.NewReaderFromReaderAt(bytes.NewReader(image), int64(len(image)))

Malformed but recoverable values (unknown enum bytes, dangling language
references) are collected instead of failing the parse:

	for _, warn := range r.Warnings() {
	    log.Println(warn)
	}

# Filtering

File entries can be narrowed with github.com/woozymasta/pathrules patterns
over normalized destination paths:

	files, err := r.FilterFiles([]pathrules.Rule{
	    {Action: pathrules.ActionInclude, Pattern: "{app}/bin/**"},
	})
*/
package inno
