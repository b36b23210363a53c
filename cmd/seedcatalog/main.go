// seedcatalog genera un script SQL para poblar el catálogo de extintores a
// partir del CSV de un proveedor europeo (codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seedcatalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: migrations/002_seed_catalog.sql
//
// Columnas esperadas (separador ';'):
//
//	product_id;name;description;type;fire_class;capacity;manufacture_date;
//	inspection_date;expiry_date;inventory;certification;standards;batch;
//	warranty_months;discount
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const expectedColumns = 15

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los catálogos del proveedor llegan en ISO-8859-1 (acentos en nombres).
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = expectedColumns

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de extintores del proveedor\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	count := 0
	for _, rec := range records[1:] { // saltar cabecera
		productID := strings.TrimSpace(rec[0])
		if productID == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO fire_extinguishers (id, product_id, name, description, type, fire_class, capacity,\n")
		fmt.Fprintf(out, "  manufacture_date, inspection_date, expiry_date, inventory, certification,\n")
		fmt.Fprintf(out, "  standards_compliance, batch_number, warranty_months, discount)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %s,\n",
			uuid.NewString(), escapeSQL(productID), escapeSQL(rec[1]), escapeSQL(rec[2]),
			escapeSQL(rec[3]), escapeSQL(rec[4]), numOrZero(rec[5]))
		fmt.Fprintf(out, "  '%s', '%s', '%s', %s, '%s',\n",
			escapeSQL(rec[6]), escapeSQL(rec[7]), escapeSQL(rec[8]),
			numOrZero(rec[9]), escapeSQL(rec[10]))
		fmt.Fprintf(out, "  '%s', '%s', %s, %s)\n",
			escapeSQL(rec[11]), escapeSQL(rec[12]), numOrZero(rec[13]), numOrZero(rec[14]))
		fmt.Fprintf(out, "ON CONFLICT (product_id) DO UPDATE SET inventory = EXCLUDED.inventory, discount = EXCLUDED.discount;\n\n")
		count++
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, count)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "'", "''")
}

func numOrZero(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
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
