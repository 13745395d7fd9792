// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/inno

package inno

// HeaderFlags is the decoded setup header flag set.
type HeaderFlags uint64

// Has reports whether every bit of flag is set.
func (f HeaderFlags) Has(flag HeaderFlags) bool {
	return f&flag == flag
}

const (
	FlagDisableStartupPrompt HeaderFlags = 1 << iota
	FlagUninstallable
	FlagCreateAppDir
	FlagDisableDirPage
	FlagDisableDirExistsWarning
	FlagDisableProgramGroupPage
	FlagAllowNoIcons
	FlagAlwaysRestart
	FlagBackSolid
	FlagAlwaysUsePersonalGroup
	FlagWindowVisible
	FlagWindowShowCaption
	FlagWindowResizable
	FlagWindowStartMaximized
	FlagEnabledDirDoesntExistWarning
	FlagDisableAppendDir
	FlagPassword
	FlagAllowRootDirectory
	FlagDisableFinishedPage
	FlagAdminPrivilegesRequired
	FlagAlwaysCreateUninstallIcon
	FlagOverwriteUninstallRegEntries
	FlagChangesAssociations
	FlagCreateUninstallRegKey
	FlagUsePreviousAppDir
	FlagBackColorHorizontal
	FlagUsePreviousGroup
	FlagUpdateUninstallLogAppName
	FlagUsePreviousSetupType
	FlagDisableReadyMemo
	FlagAlwaysShowComponentsList
	FlagFlatComponentsList
	FlagShowComponentSizes
	FlagUsePreviousTasks
	FlagDisableReadyPage
	FlagAlwaysShowDirOnReadyPage
	FlagAlwaysShowGroupOnReadyPage
	FlagBzipUsed
	FlagAllowUNCPath
	FlagUserInfoPage
	FlagUsePreviousUserInfo
	FlagUninstallRestartComputer
	FlagRestartIfNeededByRun
	FlagShowTasksTreeLines
	FlagDetectLanguageUsingLocale
	FlagAllowCancelDuringInstall
	FlagWizardImageStretch
	FlagAppendDefaultDirName
	FlagAppendDefaultGroupName
	FlagEncryptionUsed
	FlagChangesEnvironment
	FlagShowUndisplayableLanguages
	FlagSetupLogging
	FlagSignedUninstaller
	FlagUsePreviousLanguage
	FlagDisableWelcomePage
	FlagCloseApplications
	FlagRestartApplications
	FlagAllowNetworkDrive
	FlagForceCloseApplications
	FlagAppNameHasConsts
	FlagUsePreviousPrivileges
	FlagWizardResizable
	FlagUninstallLogging
)

// headerFlagGates lists the header bitfield in on-disk bit order. Rows that
// switched below the oldest tabulated release stay for completeness; they
// simply never match.
var headerFlagGates = []flagGate{
	{flag: uint64(FlagDisableStartupPrompt)},
	{flag: uint64(FlagUninstallable), until: ver(5, 3, 10)},
	{flag: uint64(FlagCreateAppDir)},
	{flag: uint64(FlagDisableDirPage), until: ver(5, 3, 3)},
	{flag: uint64(FlagDisableDirExistsWarning), until: ver(1, 3, 6)},
	{flag: uint64(FlagDisableProgramGroupPage), until: ver(5, 3, 3)},
	{flag: uint64(FlagAllowNoIcons)},
	{flag: uint64(FlagAlwaysRestart), cond: func(v KnownVersion) bool {
		return !v.inRange(ver(3, 0, 0), ver(3, 0, 3))
	}},
	{flag: uint64(FlagBackSolid), until: ver(1, 3, 3)},
	{flag: uint64(FlagAlwaysUsePersonalGroup)},
	{flag: uint64(FlagWindowVisible), until: Version{6, 4, 0, 1}},
	{flag: uint64(FlagWindowShowCaption), until: Version{6, 4, 0, 1}},
	{flag: uint64(FlagWindowResizable), until: Version{6, 4, 0, 1}},
	{flag: uint64(FlagWindowStartMaximized), until: Version{6, 4, 0, 1}},
	{flag: uint64(FlagEnabledDirDoesntExistWarning)},
	{flag: uint64(FlagDisableAppendDir), until: ver(4, 1, 2)},
	{flag: uint64(FlagPassword)},
	{flag: uint64(FlagAllowRootDirectory), from: ver(1, 2, 6)},
	{flag: uint64(FlagDisableFinishedPage), from: ver(1, 2, 14)},
	{flag: uint64(FlagAdminPrivilegesRequired), until: ver(3, 0, 4)},
	{flag: uint64(FlagAlwaysCreateUninstallIcon), until: ver(3, 0, 0)},
	{flag: uint64(FlagOverwriteUninstallRegEntries), until: ver(1, 3, 6)},
	{flag: uint64(FlagChangesAssociations), until: ver(5, 6, 1)},
	{flag: uint64(FlagCreateUninstallRegKey), from: ver(1, 3, 0), until: ver(5, 3, 8)},
	{flag: uint64(FlagUsePreviousAppDir), from: ver(1, 3, 1)},
	{flag: uint64(FlagBackColorHorizontal), from: ver(1, 3, 3), until: Version{6, 4, 0, 1}},
	{flag: uint64(FlagUsePreviousGroup), from: ver(1, 3, 10)},
	{flag: uint64(FlagUpdateUninstallLogAppName), from: ver(1, 3, 20)},
	{flag: uint64(FlagUsePreviousSetupType), from: ver(2, 0, 0), isxFrom: ver(1, 3, 10)},
	{flag: uint64(FlagDisableReadyMemo), from: ver(2, 0, 0)},
	{flag: uint64(FlagAlwaysShowComponentsList), from: ver(2, 0, 0)},
	{flag: uint64(FlagFlatComponentsList), from: ver(2, 0, 0)},
	{flag: uint64(FlagShowComponentSizes), from: ver(2, 0, 0)},
	{flag: uint64(FlagUsePreviousTasks), from: ver(2, 0, 0)},
	{flag: uint64(FlagDisableReadyPage), from: ver(2, 0, 0)},
	{flag: uint64(FlagAlwaysShowDirOnReadyPage), from: ver(2, 0, 7)},
	{flag: uint64(FlagAlwaysShowGroupOnReadyPage), from: ver(2, 0, 7)},
	{flag: uint64(FlagBzipUsed), from: ver(2, 0, 17), until: ver(4, 1, 5)},
	{flag: uint64(FlagAllowUNCPath), from: ver(2, 0, 18)},
	{flag: uint64(FlagUserInfoPage), from: ver(3, 0, 0)},
	{flag: uint64(FlagUsePreviousUserInfo), from: ver(3, 0, 0)},
	{flag: uint64(FlagUninstallRestartComputer), from: ver(3, 0, 1)},
	{flag: uint64(FlagRestartIfNeededByRun), from: ver(3, 0, 3)},
	{flag: uint64(FlagShowTasksTreeLines), from: ver(4, 0, 0), isxFrom: ver(3, 0, 3)},
	{flag: uint64(FlagDetectLanguageUsingLocale), from: ver(4, 0, 1), until: ver(4, 0, 10)},
	{flag: uint64(FlagAllowCancelDuringInstall), from: ver(4, 0, 9)},
	{flag: uint64(FlagWizardImageStretch), from: ver(4, 1, 3)},
	{flag: uint64(FlagAppendDefaultDirName), from: ver(4, 1, 8)},
	{flag: uint64(FlagAppendDefaultGroupName), from: ver(4, 1, 8)},
	{flag: uint64(FlagEncryptionUsed), from: ver(4, 2, 2), until: ver(6, 5, 0)},
	{flag: uint64(FlagChangesEnvironment), from: ver(5, 0, 4), until: ver(5, 6, 1)},
	{flag: uint64(FlagShowUndisplayableLanguages), from: ver(5, 1, 7), notUnicode: true},
	{flag: uint64(FlagSetupLogging), from: ver(5, 1, 13)},
	{flag: uint64(FlagSignedUninstaller), from: ver(5, 2, 1)},
	{flag: uint64(FlagUsePreviousLanguage), from: ver(5, 3, 8)},
	{flag: uint64(FlagDisableWelcomePage), from: ver(5, 3, 9)},
	{flag: uint64(FlagCloseApplications), from: ver(5, 5, 0)},
	{flag: uint64(FlagRestartApplications), from: ver(5, 5, 0)},
	{flag: uint64(FlagAllowNetworkDrive), from: ver(5, 5, 0)},
	{flag: uint64(FlagForceCloseApplications), from: ver(5, 5, 7)},
	{flag: uint64(FlagAppNameHasConsts), from: ver(6, 0, 0)},
	{flag: uint64(FlagUsePreviousPrivileges), from: ver(6, 0, 0)},
	{flag: uint64(FlagWizardResizable), from: ver(6, 0, 0)},
	{flag: uint64(FlagUninstallLogging), from: ver(6, 3, 0)},
}
