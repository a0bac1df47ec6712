// Package xmlexport serializa el historial de entradas de stock como XML
// canónico (C14N) para conciliación contable externa. El digest SHA-256 del
// documento canónico acompaña la respuesta: dos exports con el mismo contenido
// producen bytes y digest idénticos.
package xmlexport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

var _ appstock.IntakeLedgerExporter = (*IntakeExporter)(nil)

// IntakeExporter implementa stock.IntakeLedgerExporter con etree + c14n.
type IntakeExporter struct{}

// NewIntakeExporter construye el exportador.
func NewIntakeExporter() *IntakeExporter { return &IntakeExporter{} }

// Export arma el documento, lo canonicaliza y calcula su digest SHA-256 (hex).
func (e *IntakeExporter) Export(company *entity.Company, intakes []*entity.StockIntake) ([]byte, string, error) {
	doc := buildDocument(company, intakes)

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xmlexport: serializar: %w", err)
	}
	canonical, err := canonicalize(raw)
	if err != nil {
		return nil, "", fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	digest := sha256.Sum256(canonical)
	return canonical, hex.EncodeToString(digest[:]), nil
}

func buildDocument(company *entity.Company, intakes []*entity.StockIntake) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockIntakeLedger")
	root.CreateAttr("version", "1.0")

	comp := root.CreateElement("Company")
	comp.CreateElement("ID").SetText(company.ID)
	comp.CreateElement("Name").SetText(company.Name)
	comp.CreateElement("NIT").SetText(company.NIT)

	entries := root.CreateElement("Entries")
	entries.CreateAttr("count", fmt.Sprintf("%d", len(intakes)))
	for _, in := range intakes {
		entry := entries.CreateElement("Entry")
		entry.CreateAttr("id", in.ID)
		entry.CreateElement("VariantID").SetText(in.VariantID)
		entry.CreateElement("Quantity").SetText(in.Quantity.String())
		entry.CreateElement("Value").SetText(in.Value.String())
		entry.CreateElement("SupplierID").SetText(in.SupplierID)
		if in.BranchID != nil {
			entry.CreateElement("BranchID").SetText(*in.BranchID)
		}
		if in.Reference != "" {
			entry.CreateElement("Reference").SetText(in.Reference)
		}
		entry.CreateElement("CreatedBy").SetText(in.CreatedBy)
		entry.CreateElement("CreatedAt").SetText(in.CreatedAt.UTC().Format(time.RFC3339))
	}
	return doc
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
