// seedcatalog fills a fresh database with demo catalog data: the
// shop-by-age collections, a handful of curated products with
// color/size variants, and a few blog posts. Variant stock and SKUs
// are randomized so lists look alive.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bebeboutique.mx/app/internal/modules/catalog"
	"bebeboutique.mx/app/internal/modules/content"
	"bebeboutique.mx/app/internal/shared/slug"
)

var swatches = map[string]string{
	"Rosa":     "#f9a8d4",
	"Azul":     "#93c5fd",
	"Amarillo": "#fde68a",
	"Blanco":   "#ffffff",
	"Verde":    "#bbf7d0",
}

type seedProduct struct {
	name        string
	description string
	featured    bool
	collection  string
	colors      []string
	sizes       []string
	priceCents  int
	compareAt   int
}

var products = []seedProduct{
	{
		name:        "Mameluco Nube Suave",
		description: "Mameluco de algodón orgánico, cierre de broches y tela hipoalergénica.",
		featured:    true,
		collection:  "0-6 meses",
		colors:      []string{"Rosa", "Azul", "Blanco"},
		sizes:       []string{"RN", "3M", "6M"},
		priceCents:  34900,
		compareAt:   42900,
	},
	{
		name:        "Conjunto Osito Abrazable",
		description: "Dos piezas con orejitas en la capucha, perfecto para las tardes frescas.",
		featured:    true,
		collection:  "6-12 meses",
		colors:      []string{"Amarillo", "Verde"},
		sizes:       []string{"6M", "9M", "12M"},
		priceCents:  45900,
		compareAt:   0,
	},
	{
		name:        "Pijama Estrellitas",
		description: "Pijama enteriza con pies antiderrapantes y estampado de estrellas.",
		collection:  "12-24 meses",
		colors:      []string{"Azul", "Rosa"},
		sizes:       []string{"12M", "18M", "24M"},
		priceCents:  38900,
		compareAt:   48900,
	},
	{
		name:        "Gorrito Tejido Arcoíris",
		description: "Gorrito de punto suave, talla única para recién nacidos.",
		collection:  "0-6 meses",
		colors:      nil, // single fixed variant
		sizes:       nil,
		priceCents:  15900,
		compareAt:   0,
	},
}

var collections = []struct {
	name, description string
}{
	{"0-6 meses", "Los primeros días merecen lo más suave"},
	{"6-12 meses", "Para gatear, descubrir y ensuciarse"},
	{"12-24 meses", "Primeros pasos con estilo"},
}

var posts = []struct {
	title, excerpt string
}{
	{"Cómo elegir la talla correcta", "Las tallas de bebé cambian rápido; esta guía te ayuda a no quedarte corto."},
	{"Telas seguras para piel sensible", "Qué buscar en las etiquetas cuando tu bebé tiene piel delicada."},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()
	repo := catalog.NewRepo(db)
	contentRepo := content.NewRepo(db)

	colIDs := map[string]string{}
	for i, c := range collections {
		col, err := repo.CreateCollection(ctx, c.name, slug.FromName(c.name), c.description, "", i)
		if err != nil {
			log.Fatalf("seed collection %q: %v", c.name, err)
		}
		colIDs[c.name] = col.ID
	}

	for _, sp := range products {
		if err := seedOne(ctx, db, repo, sp, colIDs[sp.collection]); err != nil {
			log.Fatalf("seed product %q: %v", sp.name, err)
		}
	}

	for _, p := range posts {
		body := gofakeit.Paragraph(3, 4, 12, "\n\n")
		if _, err := contentRepo.Create(ctx, slug.FromName(p.title), p.title, p.excerpt, body, "", true); err != nil {
			log.Fatalf("seed post %q: %v", p.title, err)
		}
	}

	log.Println("catalog seeded")
}

func seedOne(ctx context.Context, db *gorm.DB, repo *catalog.Repo, sp seedProduct, collectionID string) error {
	var defs []catalog.OptionDef
	if len(sp.colors) > 0 {
		sw := map[string]string{}
		for _, c := range sp.colors {
			sw[c] = swatches[c]
		}
		defs = append(defs, catalog.OptionDef{Name: "Color", Values: sp.colors, Swatches: sw})
	}
	if len(sp.sizes) > 0 {
		defs = append(defs, catalog.OptionDef{Name: "Talla", Values: sp.sizes})
	}

	optsJSON, err := catalog.EncodeOptionDefs(defs)
	if err != nil {
		return err
	}

	p, err := repo.CreateProduct(ctx, sp.name, slug.FromName(sp.name), sp.description, catalog.StatusActive, optsJSON)
	if err != nil {
		return err
	}

	if sp.featured || collectionID != "" {
		updates := map[string]any{"featured": sp.featured}
		if collectionID != "" {
			updates["collection_id"] = collectionID
		}
		if err := db.WithContext(ctx).Model(&catalog.Product{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return err
		}
	}

	if len(defs) == 0 {
		_, err := repo.AddVariant(ctx, p.ID, newSKU(sp.name, "UNICA"), nil, sp.priceCents, sp.compareAt, "MXN", gofakeit.Number(5, 40))
		return err
	}

	for _, color := range orDefault(sp.colors) {
		for _, size := range orDefault(sp.sizes) {
			opts := map[string]string{}
			if color != "" {
				opts["Color"] = color
			}
			if size != "" {
				opts["Talla"] = size
			}
			optsJSON, err := catalog.EncodeOptionValues(opts)
			if err != nil {
				return err
			}
			// some combinations ship sold out on purpose
			stock := gofakeit.Number(0, 25)
			_, err = repo.AddVariant(ctx, p.ID, newSKU(sp.name, color+size), optsJSON, sp.priceCents, sp.compareAt, "MXN", stock)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func orDefault(vals []string) []string {
	if len(vals) == 0 {
		return []string{""}
	}
	return vals
}

func newSKU(name, variant string) string {
	base := strings.ToUpper(slug.FromName(name))
	base = strings.ReplaceAll(base, "-", "")
	if len(base) > 8 {
		base = base[:8]
	}
	v := strings.ToUpper(slug.FromName(variant))
	v = strings.ReplaceAll(v, "-", "")
	return fmt.Sprintf("%s-%s-%04d", base, v, gofakeit.Number(0, 9999))
}
