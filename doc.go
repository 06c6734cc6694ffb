// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/cakedoc

/*
Package cakedoc provides the documentation macros and the error-code catalogue
of the CakeIO file library documentation site.

The catalogue describes, per API class and function, which error codes a call
can produce, the policy that makes an error path reachable, and a short
explanation. Tables are built once at package load and are read-only; accessors
return copies.

Look up a shared error code:

	code, err := cakedoc.FileCommon.Lookup("DoesNotExist")
	if err != nil {
		return err
	}

	fmt.Println(code.CodeValue, code.HasPolicy())

Render one class as a markdown table:

	md, err := cakedoc.RenderClassByName("FCakeFile", cakedoc.Options{
		TemplateName: "table",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Render a page template that calls macros:

	md, err := cakedoc.RenderPage(`{{ sourceLocSingle "FCakeFile" }}
	{{ markMissing "FCakeFile-overview" "write intro" }}
	{{ errorTable "FCakeFile" }}`, cakedoc.PageOptions{Name: "file.md"})
	if err != nil {
		return err
	}

	fmt.Println(md)

Export a class for the site table plugin:

	class, _ := cakedoc.Class("FCakeDir")
	if err := cakedoc.ExportClass(os.Stdout, class, cakedoc.ExportFormatCSV); err != nil {
		return err
	}

Run a full build from a YAML config:

	cfg, err := cakedoc.LoadConfig("cakedoc.yaml")
	if err != nil {
		return err
	}

	report, err := cakedoc.Build(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	fmt.Println(len(report.Pages), report.MissingContent)
*/
package cakedoc
