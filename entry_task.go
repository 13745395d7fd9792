// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// TaskFlags is the decoded task entry flag set.
type TaskFlags uint8

const (
	TaskExclusive TaskFlags = 1 << iota
	TaskUnchecked
	TaskRestart
	TaskCheckedOnce
	TaskDontInheritCheck
)

// taskFlagGates is the task bitfield in on-disk bit order.
var taskFlagGates = []flagGate{
	{flag: uint64(TaskExclusive)},
	{flag: uint64(TaskUnchecked)},
	{flag: uint64(TaskRestart), from: ver(2, 0, 5)},
	{flag: uint64(TaskCheckedOnce), from: ver(2, 0, 6)},
	{flag: uint64(TaskDontInheritCheck), from: ver(4, 2, 3)},
}

// Task is one optional installation task shown on the tasks page.
type Task struct {
	Name             string              `json:"name,omitempty" yaml:"name,omitempty"`
	Description      string              `json:"description,omitempty" yaml:"description,omitempty"`
	GroupDescription string              `json:"groupDescription,omitempty" yaml:"groupDescription,omitempty"`
	Components       string              `json:"components,omitempty" yaml:"components,omitempty"`
	Languages        string              `json:"languages,omitempty" yaml:"languages,omitempty"`
	Check            string              `json:"check,omitempty" yaml:"check,omitempty"`
	Level            uint32              `json:"level" yaml:"level"`
	Used             bool                `json:"used" yaml:"used"`
	WindowsVersion   WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	Flags            TaskFlags           `json:"flags" yaml:"flags"`
}

func readTask(fr *fieldReader) (Task, error) {
	var t Task
	var err error

	for _, dst := range []*string{&t.Name, &t.Description, &t.GroupDescription, &t.Components} {
		if *dst, err = fr.readString(); err != nil {
			return t, err
		}
	}

	if fr.caps.CondLanguages {
		if t.Languages, err = fr.readString(); err != nil {
			return t, err
		}
	}
	if fr.caps.CondCheck {
		if t.Check, err = fr.readString(); err != nil {
			return t, err
		}
	}

	if fr.caps.EntryHasLevel {
		if t.Level, err = fr.readU32(); err != nil {
			return t, err
		}
	}

	if fr.caps.EntryHasUsed {
		used, err := fr.readU8()
		if err != nil {
			return t, err
		}
		t.Used = used != 0
	} else {
		t.Used = true
	}

	if t.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return t, err
	}

	flags, err := fr.readFlagSet(taskFlagGates)
	if err != nil {
		return t, err
	}
	t.Flags = TaskFlags(flags)

	return t, nil
}
