// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// RunFlags is the decoded run entry flag set.
type RunFlags uint16

const (
	RunShellExecute RunFlags = 1 << iota
	RunSkipIfDoesntExist
	RunPostInstall
	RunUnchecked
	RunSkipIfSilent
	RunSkipIfNotSilent
	RunHideWizard
	Run32Bit
	Run64Bit
	RunAsOriginalUser
	RunDontLogParameters
	RunLogOutput
)

// WaitCondition says when the installer resumes after starting the process.
type WaitCondition uint8

const (
	WaitUntilTerminated WaitCondition = iota
	WaitNoWait
	WaitUntilIdle
)

// runFlagGates is the run bitfield in on-disk bit order.
var runFlagGates = []flagGate{
	{flag: uint64(RunShellExecute), from: ver(1, 2, 3)},
	{flag: uint64(RunSkipIfDoesntExist), from: ver(1, 3, 9), isxFrom: ver(1, 3, 8)},
	{flag: uint64(RunPostInstall), from: ver(2, 0, 0)},
	{flag: uint64(RunUnchecked), from: ver(2, 0, 0)},
	{flag: uint64(RunSkipIfSilent), from: ver(2, 0, 0)},
	{flag: uint64(RunSkipIfNotSilent), from: ver(2, 0, 0)},
	{flag: uint64(RunHideWizard), from: ver(2, 0, 8)},
	{flag: uint64(Run32Bit), from: ver(5, 1, 10)},
	{flag: uint64(Run64Bit), from: ver(5, 1, 10)},
	{flag: uint64(RunAsOriginalUser), from: ver(5, 2, 0)},
	{flag: uint64(RunDontLogParameters), from: ver(6, 1, 0)},
	{flag: uint64(RunLogOutput), from: ver(6, 3, 0)},
}

// RunEntry is one program executed during install or uninstall.
type RunEntry struct {
	Name             string              `json:"name,omitempty" yaml:"name,omitempty"`
	Parameters       string              `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	WorkingDirectory string              `json:"workingDirectory,omitempty" yaml:"workingDirectory,omitempty"`
	RunOnceID        string              `json:"runOnceId,omitempty" yaml:"runOnceId,omitempty"`
	StatusMessage    string              `json:"statusMessage,omitempty" yaml:"statusMessage,omitempty"`
	Verb             string              `json:"verb,omitempty" yaml:"verb,omitempty"`
	Description      string              `json:"description,omitempty" yaml:"description,omitempty"`
	Condition        Condition           `json:"condition" yaml:"condition"`
	WindowsVersion   WindowsVersionRange `json:"windowsVersion" yaml:"windowsVersion"`
	ShowCommand      int32               `json:"showCommand" yaml:"showCommand"`
	Wait             WaitCondition       `json:"wait" yaml:"wait"`
	Flags            RunFlags            `json:"flags" yaml:"flags"`
}

func readRunEntry(fr *fieldReader) (RunEntry, error) {
	var e RunEntry
	var err error

	for _, dst := range []*string{&e.Name, &e.Parameters, &e.WorkingDirectory, &e.RunOnceID} {
		if *dst, err = fr.readString(); err != nil {
			return e, err
		}
	}

	if fr.caps.RunHasStatusMessage {
		if e.StatusMessage, err = fr.readString(); err != nil {
			return e, err
		}
	}
	if fr.caps.RunHasVerb {
		if e.Verb, err = fr.readString(); err != nil {
			return e, err
		}
	}
	if fr.caps.RunHasDescription {
		if e.Description, err = fr.readString(); err != nil {
			return e, err
		}
	}

	if e.Condition, err = fr.readCondition(); err != nil {
		return e, err
	}

	if e.WindowsVersion, err = fr.readWindowsVersionRange(); err != nil {
		return e, err
	}

	if fr.caps.RunHasShowCommand {
		if e.ShowCommand, err = fr.readI32(); err != nil {
			return e, err
		}
	}

	wait, err := fr.readEnumByte("wait condition", uint8(WaitUntilIdle))
	if err != nil {
		return e, err
	}
	e.Wait = WaitCondition(wait)

	flags, err := fr.readFlagSet(runFlagGates)
	if err != nil {
		return e, err
	}
	e.Flags = RunFlags(flags)

	return e, nil
}
