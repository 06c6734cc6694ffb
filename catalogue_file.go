// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

// FileCommon holds error codes shared by FCakeFile functions.
var FileCommon = newRegistry("FCakeFile", map[string]ErrorCode{
	"DoesNotExist": {
		CodeValue:    "DoesNotExist",
		ExtraContext: "Occurs when the file does not exist.",
	},
	"AlreadyExists": {
		CodeValue:    "AlreadyExists",
		LinkedPolicy: "OverwriteItems",
		ExtraContext: "Occurs when the file already exists and the policy disallows overwriting items.",
	},
	"FailedCreatingMissingParents": {
		CodeValue:    "FailedCreatingMissingParents",
		LinkedPolicy: "MissingParents",
		ExtraContext: "Occurs when the destination directory has missing parents, the policy allows creation of missing parents, but the directory creation IO operations failed.",
	},
	"DestDirDoesNotExist": {
		CodeValue:    "DestDirDoesNotExist",
		LinkedPolicy: "MissingParents",
		ExtraContext: "Occurs when the destination directory has missing parents and the policy disallows missing parent creation.",
	},
	"FileIsReadOnly": {
		CodeValue:    "FileIsReadOnly",
		LinkedPolicy: "FileDelete",
		ExtraContext: "Occurs when the file is read only and the policy disallows deleting read only files.",
	},
	"FailedOpenW": {
		CodeValue:    "FailedOpenW",
		ExtraContext: "Occurs when a write handle could not be obtained from the operating system.",
	},
	"FailedOpenR": {
		CodeValue:    "FailedOpenR",
		ExtraContext: "Occurs when a read handle could not be obtained from the operating system.",
	},
	"FailedCopy": {
		CodeValue:    "FailedCopy",
		ExtraContext: "Occurs when the operating system failed copying the source file to the destination directory.",
	},
	"FailedDelete": {
		CodeValue:    "FailedDelete",
		ExtraContext: "Occurs when the operating system failed deleting the file.",
	},
})

var fCakeFile = ClassErrorMap{
	TypeName: "FCakeFile",
	FuncMap: []FunctionErrorMap{
		{
			FuncName: "CreateTextFile / CreateBinaryFile",
			ErrorCodes: []ErrorCode{
				FileCommon.MustLookup("AlreadyExists"),
				FileCommon.MustLookup("FailedCreatingMissingParents"),
				FileCommon.MustLookup("DestDirDoesNotExist"),
				FileCommon.MustLookup("FailedOpenW"),
			},
		},
		{
			FuncName: "CreateOrWriteTextFile / CreateOrWriteBinaryFile",
			ErrorCodes: []ErrorCode{
				FileCommon.MustLookup("AlreadyExists"),
				FileCommon.MustLookup("FailedCreatingMissingParents"),
				FileCommon.MustLookup("DestDirDoesNotExist"),
				FileCommon.MustLookup("FailedOpenW"),
			},
		},
		{
			FuncName: "WriteTextToFile / WriteBytesToFile",
			ErrorCodes: []ErrorCode{
				FileCommon.MustWithContext("DoesNotExist", "Write is only intended for existing files, use Create otherwise."),
				FileCommon.MustLookup("FailedOpenW"),
			},
		},
		{
			FuncName: "AppendTextToFile / AppendBytesToFile",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when an empty string or empty byte array is submitted to be appended."},
				FileCommon.MustWithContext("DoesNotExist", "Append is only intended for existing files, use Create otherwise."),
				FileCommon.MustLookup("FailedOpenW"),
			},
		},
		{
			FuncName: "ReadFileAsString / ReadFileAsBytes",
			ErrorCodes: []ErrorCode{
				FileCommon.MustLookup("DoesNotExist"),
				FileCommon.MustLookup("FailedOpenR"),
			},
		},
		{
			FuncName: "DeleteFile",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when the file already does not exist."},
				FileCommon.MustLookup("FileIsReadOnly"),
				{CodeValue: "CouldNotChangePerms", LinkedPolicy: "FileDelete", ExtraContext: "Occurs when the file is read only, the policy allows deleting read only files, but the operating system could not remove the read only attribute from the file."},
				FileCommon.MustLookup("FailedDelete"),
			},
		},
		{
			FuncName: "CopyFile / CopyFileAliased",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when the destination directory is the source file's directory."},
				FileCommon.MustLookup("DoesNotExist"),
				FileCommon.MustLookup("AlreadyExists"),
				{CodeValue: "CouldNotReplace", LinkedPolicy: "OverwriteItems", ExtraContext: "Occurs when a file of the same name already exists in destination directory, the policy allows overwrites, but that file could not be deleted in preparation for the copy operation."},
			},
		},
		{
			FuncName: "MoveFile / MoveFileAliased",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when the destination directory is the source file's directory."},
				FileCommon.MustLookup("DoesNotExist"),
				FileCommon.MustLookup("AlreadyExists"),
				{CodeValue: "CouldNotReplace", LinkedPolicy: "OverwriteItems", ExtraContext: "Occurs when a file of the same name already exists in destination directory, the policy allows overwrites, but that file could not be deleted in preparation for the move operation."},
				{CodeValue: "FailedCopy", ExtraContext: "Occurs when the operating system failed copying the source file to the destination directory."},
				{CodeValue: "FailedDelete", ExtraContext: "Occurs when the operating system failed deleting the original source file."},
			},
		},
		{
			FuncName: "RenameFile",
			ErrorCodes: []ErrorCode{
				{CodeValue: "BadFileName", ExtraContext: "Occurs when the submitted name is completely empty after being sanitized for illegal characters."},
				{CodeValue: "NOP", ExtraContext: "Occurs when the destination directory is the source file's directory."},
				FileCommon.MustLookup("DoesNotExist"),
				FileCommon.MustLookup("AlreadyExists"),
				{CodeValue: "CouldNotReplace", LinkedPolicy: "OverwriteItems", ExtraContext: "Occurs when a file of the same name already exists in destination directory, the policy allows overwrites, but that file could not be deleted in preparation for the move operation."},
				{CodeValue: "FailedCopy", ExtraContext: "Occurs when the operating system failed copying the source file to the destination directory."},
				{CodeValue: "FailedDelete", ExtraContext: "Occurs when the operating system failed deleting the original source file."},
			},
		},
	},
}
