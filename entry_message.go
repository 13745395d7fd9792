// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

import "fmt"

// Message is one localized message override. The value is stored in the
// encoding of the language it belongs to.
type Message struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// LanguageIndex points into the language list; -1 means every language.
	LanguageIndex int32 `json:"languageIndex" yaml:"languageIndex"`
}

func readMessage(fr *fieldReader, languages []Language) (Message, error) {
	var m Message
	var err error

	if m.Name, err = fr.readString(); err != nil {
		return m, err
	}

	raw, err := fr.readRawValue()
	if err != nil {
		return m, err
	}

	if m.LanguageIndex, err = fr.readI32(); err != nil {
		return m, err
	}

	codepage := fr.codepage
	if m.LanguageIndex >= 0 {
		if int(m.LanguageIndex) >= len(languages) {
			fr.warnings = append(fr.warnings, fmt.Errorf(
				"%w: message %q references language %d of %d",
				ErrDanglingReference, m.Name, m.LanguageIndex, len(languages)))
		} else {
			codepage = languages[m.LanguageIndex].Codepage
		}
	}

	if raw != nil {
		if fr.caps.Unicode || codepage == codepageUTF16 {
			m.Value, err = decodeUTF16(raw)
		} else {
			m.Value, err = decodeCodepage(raw, codepage)
		}
		if err != nil {
			return m, err
		}
	}

	return m, nil
}
