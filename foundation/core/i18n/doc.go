// Package i18n provides message catalogs for the euler workbench.
//
// Package: i18n
// Title: Message Catalogs and Locale Selection
// Description: This package loads translations from TOML and YAML files,
//              either from a directory or from an embedded file system,
//              resolves dotted keys with fallback to the default locale,
//              renders text/template placeholders and detects a locale from
//              environment values such as LANG or Accept-Language lists.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: fs.FS sources, exact string values, no watching or plurals
//
// Catalog files are named after their locale ("ru.toml", "en.yaml").
// Values are returned exactly as written, including leading and trailing
// spaces, because console labels depend on them.
//
// Usage:
//   //go:embed locales/*
//   var catalogs embed.FS
//
//   sub, _ := fs.Sub(catalogs, "locales")
//   m, err := i18n.New(i18n.Options{DefaultLocale: "ru", FS: sub})
//   if err != nil {
//     return err
//   }
//   _ = m.SetLocale(m.DetectLocale(os.Getenv("LANG")))
//   fmt.Print(m.T("prompt.real_first"))
package i18n
