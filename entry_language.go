// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// Language is one installer language with its fonts and localized texts.
type Language struct {
	InternalName             string `json:"internalName,omitempty" yaml:"internalName,omitempty"`
	Name                     string `json:"name,omitempty" yaml:"name,omitempty"`
	DialogFont               string `json:"dialogFont,omitempty" yaml:"dialogFont,omitempty"`
	TitleFont                string `json:"titleFont,omitempty" yaml:"titleFont,omitempty"`
	WelcomeFont              string `json:"welcomeFont,omitempty" yaml:"welcomeFont,omitempty"`
	CopyrightFont            string `json:"copyrightFont,omitempty" yaml:"copyrightFont,omitempty"`
	Data                     string `json:"data,omitempty" yaml:"data,omitempty"`
	LicenseText              string `json:"licenseText,omitempty" yaml:"licenseText,omitempty"`
	InfoBefore               string `json:"infoBefore,omitempty" yaml:"infoBefore,omitempty"`
	InfoAfter                string `json:"infoAfter,omitempty" yaml:"infoAfter,omitempty"`
	ID                       uint32 `json:"id" yaml:"id"`
	Codepage                 uint16 `json:"codepage" yaml:"codepage"`
	DialogFontSize           uint32 `json:"dialogFontSize" yaml:"dialogFontSize"`
	DialogFontStandardHeight uint32 `json:"dialogFontStandardHeight,omitempty" yaml:"dialogFontStandardHeight,omitempty"`
	TitleFontSize            uint32 `json:"titleFontSize" yaml:"titleFontSize"`
	WelcomeFontSize          uint32 `json:"welcomeFontSize" yaml:"welcomeFontSize"`
	CopyrightFontSize        uint32 `json:"copyrightFontSize" yaml:"copyrightFontSize"`
	RightToLeft              bool   `json:"rightToLeft,omitempty" yaml:"rightToLeft,omitempty"`
}

// lcidCodepages maps the low word of a Windows language id to the ANSI code
// page its locale writes with. Legacy headers store no code page field, so it
// is derived from the id; unmapped locales fall back to 1252.
var lcidCodepages = map[uint16]uint16{
	0x0401: 1256, // Arabic
	0x0405: 1250, // Czech
	0x0408: 1253, // Greek
	0x040d: 1255, // Hebrew
	0x040e: 1250, // Hungarian
	0x0411: 932,  // Japanese
	0x0412: 949,  // Korean
	0x0415: 1250, // Polish
	0x0419: 1251, // Russian
	0x041e: 874,  // Thai
	0x041f: 1254, // Turkish
	0x0804: 936,  // Chinese (Simplified)
	0x0404: 950,  // Chinese (Traditional)
	0x0402: 1251, // Bulgarian
	0x041a: 1250, // Croatian
	0x0424: 1250, // Slovenian
	0x041b: 1250, // Slovak
	0x0422: 1251, // Ukrainian
	0x042a: 1258, // Vietnamese
}

func codepageForLCID(id uint32) uint16 {
	if cp, ok := lcidCodepages[uint16(id)]; ok {
		return cp
	}

	return defaultCodepage
}

func readLanguage(fr *fieldReader) (Language, error) {
	var l Language
	var err error

	if fr.caps.LangInternalName {
		if l.InternalName, err = fr.readString(); err != nil {
			return l, err
		}
	}

	for _, dst := range []*string{&l.Name, &l.DialogFont, &l.TitleFont, &l.WelcomeFont, &l.CopyrightFont} {
		if *dst, err = fr.readString(); err != nil {
			return l, err
		}
	}

	if fr.caps.LangData {
		if l.Data, err = fr.readString(); err != nil {
			return l, err
		}
	}

	if fr.caps.LangLicenseInfo {
		if l.LicenseText, err = fr.readString(); err != nil {
			return l, err
		}
		if l.InfoBefore, err = fr.readString(); err != nil {
			return l, err
		}
		if l.InfoAfter, err = fr.readString(); err != nil {
			return l, err
		}
	}

	if l.ID, err = fr.readU32(); err != nil {
		return l, err
	}

	switch {
	case fr.caps.LangCodepageFromID:
		l.Codepage = codepageForLCID(l.ID)

	case fr.caps.LangCodepageField:
		cp, err := fr.readU32()
		if err != nil {
			return l, err
		}
		l.Codepage = defaultCodepage
		if cp != 0 && cp <= 0xffff {
			l.Codepage = uint16(cp)
		}

	default:
		// Unicode builds keep strings UTF-16; older ones still store a
		// reserved code page dword.
		if fr.caps.LangSkipCodepage {
			if _, err = fr.readU32(); err != nil {
				return l, err
			}
		}
		l.Codepage = codepageUTF16
	}

	if l.DialogFontSize, err = fr.readU32(); err != nil {
		return l, err
	}

	if fr.caps.LangDialogStdHt {
		if l.DialogFontStandardHeight, err = fr.readU32(); err != nil {
			return l, err
		}
	}

	if l.TitleFontSize, err = fr.readU32(); err != nil {
		return l, err
	}
	if l.WelcomeFontSize, err = fr.readU32(); err != nil {
		return l, err
	}
	if l.CopyrightFontSize, err = fr.readU32(); err != nil {
		return l, err
	}

	if fr.caps.LangRightToLeft {
		rtl, err := fr.readU8()
		if err != nil {
			return l, err
		}
		l.RightToLeft = rtl != 0
	}

	return l, nil
}
