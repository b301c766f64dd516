// ============================================================================
// euler - Werkbank fuer komplexe Zahlen
// ============================================================================
//
// Package:     demo
// Description: Embedded message catalogs of the console session
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package demo

import (
	"embed"
	"io/fs"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
)

// DefaultLocale is the locale whose text matches the original console program
const DefaultLocale = "ru"

//go:embed locales/*
var catalogFiles embed.FS

// NewCatalog loads the embedded catalogs and selects locale.
// An empty locale selects DefaultLocale. Regional variants such as "en-US"
// or "ru_RU.UTF-8" select their base language; an unknown one is an error.
func NewCatalog(locale string) (*mdwi18n.Manager, error) {
	sub, err := fs.Sub(catalogFiles, "locales")
	if err != nil {
		return nil, mdwerror.Wrap(err, "embedded catalogs missing").WithCode(mdwerror.CodeInternal).WithOperation("demo.NewCatalog")
	}

	catalog, err := mdwi18n.New(mdwi18n.Options{DefaultLocale: DefaultLocale, FS: sub})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load catalogs").WithCode(mdwerror.CodeInternal).WithOperation("demo.NewCatalog")
	}

	if locale == "" {
		return catalog, nil
	}

	selected := locale
	if !catalog.HasLocale(selected) {
		selected, _ = mdwi18n.SplitLocale(locale)
	}
	if err := catalog.SetLocale(selected); err != nil {
		return nil, mdwerror.Wrap(err, "unsupported locale").WithCode(mdwerror.CodeInvalidInput).WithOperation("demo.NewCatalog").WithDetail("locale", locale)
	}
	return catalog, nil
}
