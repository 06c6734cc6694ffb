// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

package cakedoc

// DirCommon holds error codes shared by FCakeDir functions.
//
// FailedOpenR and FailedCreate carry the code values FailedOpenW and FailedCopy
// as authored; Registry.Audit reports both.
var DirCommon = newRegistry("FCakeDir", map[string]ErrorCode{
	"DoesNotExist": {
		CodeValue:    "DoesNotExist",
		ExtraContext: "Occurs when the directory does not exist.",
	},
	"AlreadyExists": {
		CodeValue:    "AlreadyExists",
		LinkedPolicy: "OverwriteItems",
		ExtraContext: "Occurs when the directory already exists and the policy disallows overwriting items.",
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
		CodeValue:    "FailedOpenW",
		ExtraContext: "Occurs when a read handle could not be obtained from the operating system.",
	},
	"FailedCreate": {
		CodeValue:    "FailedCopy",
		ExtraContext: "Occurs when the operating system failed creating the directory.",
	},
	"FailedCopy": {
		CodeValue:    "FailedCopy",
		ExtraContext: "Occurs when the operating system failed copying the source directory and its contents to the destination directory.",
	},
	"FailedDelete": {
		CodeValue:    "FailedDelete",
		ExtraContext: "Occurs when the operating system failed deleting the directory and its contents.",
	},
})

var fCakeDir = ClassErrorMap{
	TypeName: "FCakeDir",
	FuncMap: []FunctionErrorMap{
		{
			FuncName: "CreateDir",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when the directory already exists."},
				DirCommon.MustLookup("FailedCreatingMissingParents"),
				DirCommon.MustLookup("DestDirDoesNotExist"),
				DirCommon.MustLookup("FailedCreate"),
			},
		},
		{
			FuncName: "ExistsOrCreate",
			ErrorCodes: []ErrorCode{
				DirCommon.MustLookup("FailedCreatingMissingParents"),
				DirCommon.MustLookup("DestDirDoesNotExist"),
				DirCommon.MustLookup("FailedCreate"),
			},
		},
		{
			FuncName: "CopyDir / CopyDirAliased",
			ErrorCodes: []ErrorCode{
				{CodeValue: "DoesNotExist", ExtraContext: "Occurs when the source directory does not exist."},
				{CodeValue: "NOP", ExtraContext: "Occurs when the source directory and the destination directory are the same."},
				DirCommon.MustLookup("FailedCreatingMissingParents"),
				DirCommon.MustLookup("DestDirDoesNotExist"),
				DirCommon.MustLookup("FailedCopy"),
			},
		},
		{
			FuncName: "MoveDir / MoveDirAliased",
			ErrorCodes: []ErrorCode{
				{CodeValue: "DoesNotExist", ExtraContext: "Occurs when the source directory does not exist."},
				{CodeValue: "NOP", ExtraContext: "Occurs when the source directory and the destination directory are the same."},
				DirCommon.MustLookup("FailedCreatingMissingParents"),
				DirCommon.MustLookup("DestDirDoesNotExist"),
				{CodeValue: "FailedCopy", ExtraContext: "Occurs when the operating system fails copying the source directory during the move operation."},
				{CodeValue: "FailedDelete", ExtraContext: "Occurs when the operating system fails deleting the source directory after the copy operation has completed."},
			},
		},
		{
			FuncName: "RenameDir",
			ErrorCodes: []ErrorCode{
				{CodeValue: "BadDirectoryName", ExtraContext: "Occurs when the new directory name is empty after sanitizing it for illegal characters."},
				{CodeValue: "DoesNotExist", ExtraContext: "Occurs when the source directory does not exist."},
				{CodeValue: "NOP", ExtraContext: "Occurs when the source directory and the destination directory are the same."},
				DirCommon.MustLookup("DestDirDoesNotExist"),
				DirCommon.MustLookup("FailedCreatingMissingParents"),
				{CodeValue: "FailedCopy", ExtraContext: "Occurs when the operating system fails copying the source directory during the move operation."},
				{CodeValue: "FailedDelete", ExtraContext: "Occurs when the operating system fails deleting the source directory after the copy operation has completed."},
			},
		},
		{
			FuncName: "DeleteDir",
			ErrorCodes: []ErrorCode{
				{CodeValue: "NOP", ExtraContext: "Occurs when the directory does not exist."},
				DirCommon.MustLookup("FailedDelete"),
			},
		},
	},
}
