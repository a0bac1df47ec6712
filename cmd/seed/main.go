// seed genera un script SQL para poblar proveedores y productos a partir del
// export CSV de un POS legado (codificado en Windows-1252, separado por ';').
//
// Formato esperado, una fila por registro:
//
//	PROVEEDOR;<nit>;<nombre>;<telefono>;<email>
//	PRODUCTO;<sku>;<nombre>;<precio>;<tasa_iva>
//
// Uso: go run ./cmd/seed <company_id> [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type supplierRow struct {
	nit, name, phone, email string
}

type productRow struct {
	sku, name string
	price     decimal.Decimal
	taxRate   decimal.Decimal
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed <company_id> [catalogo.csv]")
		os.Exit(1)
	}
	companyID := os.Args[1]
	csvPath := "catalogo.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del POS legado vienen en Windows-1252, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var suppliers []supplierRow
	var products []productRow
	for i, row := range rows {
		if len(row) < 5 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban 5 campos, hay %d; se omite\n", i+1, len(row))
			continue
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		switch strings.ToUpper(row[0]) {
		case "PROVEEDOR":
			suppliers = append(suppliers, supplierRow{nit: row[1], name: row[2], phone: row[3], email: row[4]})
		case "PRODUCTO":
			price, err := decimal.NewFromString(row[3])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q; se omite\n", i+1, row[3])
				continue
			}
			taxRate, err := decimal.NewFromString(row[4])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Fila %d: tasa IVA inválida %q; se omite\n", i+1, row[4])
				continue
			}
			products = append(products, productRow{sku: row[1], name: row[2], price: price, taxRate: taxRate})
		default:
			fmt.Fprintf(os.Stderr, "Fila %d: tipo desconocido %q; se omite\n", i+1, row[0])
		}
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	now := time.Now().UTC().Format("2006-01-02 15:04:05+00")

	fmt.Fprintf(out, "-- Catálogo importado desde %s\n", filepath.Base(csvPath))
	fmt.Fprintf(out, "-- Empresa destino: %s\n\n", companyID)

	out.WriteString("-- 1. Proveedores\n")
	for _, s := range suppliers {
		fmt.Fprintf(out,
			"INSERT INTO suppliers (id, company_id, name, nit, contact_name, phone, email, address, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '', '%s', '%s', '', '%s', '%s')\n",
			uuid.NewString(), escapeSQL(companyID), escapeSQL(s.name), escapeSQL(s.nit),
			escapeSQL(s.phone), escapeSQL(s.email), now, now)
		out.WriteString("ON CONFLICT (company_id, nit) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email;\n")
	}

	out.WriteString("\n-- 2. Productos\n")
	for _, p := range products {
		fmt.Fprintf(out,
			"INSERT INTO products (id, company_id, sku, name, description, price, tax_rate, variant_id, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '', %s, %s, NULL, '%s', '%s')\n",
			uuid.NewString(), escapeSQL(companyID), escapeSQL(p.sku), escapeSQL(p.name),
			p.price.String(), p.taxRate.String(), now, now)
		out.WriteString("ON CONFLICT (company_id, sku) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, tax_rate = EXCLUDED.tax_rate;\n")
	}

	fmt.Printf("Generado %s: %d proveedores, %d productos\n", outPath, len(suppliers), len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
