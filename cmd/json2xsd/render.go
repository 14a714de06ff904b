package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	json2xsd "github.com/cognitoiq/json2xsd"
	"github.com/cognitoiq/json2xsd/format"
	"github.com/cognitoiq/json2xsd/lower"
	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xsderr"
)

// rootTag is the fixed name given to the document's top-level element
// and XSD element declaration; the CLI surface takes no separate flag
// for it, so every render uses the same value.
const rootTag = "Root"

func render(inputPath, xsdPath, xmlPath string, logger zerolog.Logger) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return xsderr.Wrap(xsderr.IOError, inputPath, err)
	}

	doc, err := json2xsd.DecodeJSON(data)
	if err != nil {
		return xsderr.Wrap(xsderr.MalformedInput, inputPath, err)
	}

	rec := format.New()
	graph := typegraph.Infer(rec, doc)

	xsd, xml, err := json2xsd.Render(rootTag, graph, doc, filepath.Base(xsdPath), lower.Logger(logger))
	if err != nil {
		return err
	}

	if err := os.WriteFile(xsdPath, xsd, 0o644); err != nil {
		return xsderr.Wrap(xsderr.IOError, xsdPath, err)
	}
	if err := os.WriteFile(xmlPath, xml, 0o644); err != nil {
		return xsderr.Wrap(xsderr.IOError, xmlPath, err)
	}
	return nil
}
