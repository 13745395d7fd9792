// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// Condition is the applicability filter shared by most entry kinds: an item
// is installed only when its component, task, language and script conditions
// hold.
type Condition struct {
	Components    string `json:"components,omitempty" yaml:"components,omitempty"`
	Tasks         string `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Languages     string `json:"languages,omitempty" yaml:"languages,omitempty"`
	Check         string `json:"check,omitempty" yaml:"check,omitempty"`
	AfterInstall  string `json:"afterInstall,omitempty" yaml:"afterInstall,omitempty"`
	BeforeInstall string `json:"beforeInstall,omitempty" yaml:"beforeInstall,omitempty"`
}

func (fr *fieldReader) readCondition() (Condition, error) {
	var c Condition
	var err error

	if fr.caps.CondComponents {
		if c.Components, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.CondTasks {
		if c.Tasks, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.CondLanguages {
		if c.Languages, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.CondCheck {
		if c.Check, err = fr.readString(); err != nil {
			return c, err
		}
	}

	if fr.caps.CondBeforeAfter {
		if c.AfterInstall, err = fr.readString(); err != nil {
			return c, err
		}
		if c.BeforeInstall, err = fr.readString(); err != nil {
			return c, err
		}
	}

	return c, nil
}
