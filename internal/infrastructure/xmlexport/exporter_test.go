package xmlexport

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

func fixtureCompany() *entity.Company {
	return &entity.Company{ID: "co-1", Name: "Tienda Don Pedro", NIT: "900123456-7"}
}

func fixtureIntakes() []*entity.StockIntake {
	branch := "branch-1"
	return []*entity.StockIntake{
		{
			ID:         "in-1",
			CompanyID:  "co-1",
			VariantID:  "var-1",
			Quantity:   decimal.NewFromInt(6),
			Value:      decimal.NewFromInt(9000),
			SupplierID: "sup-1",
			BranchID:   &branch,
			Reference:  "OC-042",
			CreatedBy:  "user-1",
			CreatedAt:  time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:         "in-2",
			CompanyID:  "co-1",
			VariantID:  "var-2",
			Quantity:   decimal.NewFromInt(2),
			Value:      decimal.NewFromInt(4500),
			SupplierID: "sup-1",
			CreatedBy:  "user-1",
			CreatedAt:  time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}

// ── Export ────────────────────────────────────────────────────────────────────

func TestExport_ContieneEntradas(t *testing.T) {
	exporter := NewIntakeExporter()

	canonical, digest, err := exporter.Export(fixtureCompany(), fixtureIntakes())
	require.NoError(t, err)
	require.NotEmpty(t, canonical)
	assert.Len(t, digest, 64) // SHA-256 en hex

	xml := string(canonical)
	assert.Contains(t, xml, `<Company>`)
	assert.Contains(t, xml, `<NIT>900123456-7</NIT>`)
	assert.Contains(t, xml, `count="2"`)
	assert.Contains(t, xml, `<Entry id="in-1">`)
	assert.Contains(t, xml, `<Quantity>6</Quantity>`)
	assert.Contains(t, xml, `<Reference>OC-042</Reference>`)
	assert.Contains(t, xml, `<BranchID>branch-1</BranchID>`)
	// in-2 no tiene sucursal ni referencia: los elementos opcionales se omiten
	assert.Contains(t, xml, `<Entry id="in-2">`)
	assert.NotContains(t, xml, `<Reference></Reference>`)
}

func TestExport_EsDeterminista(t *testing.T) {
	exporter := NewIntakeExporter()

	canonical1, digest1, err := exporter.Export(fixtureCompany(), fixtureIntakes())
	require.NoError(t, err)
	canonical2, digest2, err := exporter.Export(fixtureCompany(), fixtureIntakes())
	require.NoError(t, err)

	assert.Equal(t, canonical1, canonical2)
	assert.Equal(t, digest1, digest2)
}

func TestExport_DigestCambiaConElContenido(t *testing.T) {
	exporter := NewIntakeExporter()

	_, digest1, err := exporter.Export(fixtureCompany(), fixtureIntakes())
	require.NoError(t, err)

	modified := fixtureIntakes()
	modified[0].Quantity = decimal.NewFromInt(7)
	_, digest2, err := exporter.Export(fixtureCompany(), modified)
	require.NoError(t, err)

	assert.NotEqual(t, digest1, digest2)
}

func TestExport_SinEntradas(t *testing.T) {
	exporter := NewIntakeExporter()

	canonical, digest, err := exporter.Export(fixtureCompany(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(canonical), `count="0"`)
	assert.Len(t, digest, 64)
}
