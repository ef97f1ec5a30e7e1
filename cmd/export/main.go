package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
	"github.com/thesrcielos/PrinceLevels/internal/level"
)

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// Exports every level of the reference corpus to its interchange
// document, printing a short summary per level.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	loader := level.NewFileLoader(
		getEnv("LEVELS_DIR", "assets/levels/bin"),
		getEnv("LEVEL_DOCS_DIR", "assets/levels/json"),
	)

	exported := 0
	for n := 0; n < level.ReferenceLevels; n++ {
		lvl, err := loader.Load(n)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				fmt.Printf("Level %d: no source, skipped\n", n)
				continue
			}
			log.Fatalf("Level %d: %v", n, err)
		}

		path := loader.DocumentPath(n)
		if err := loader.Export(lvl, path); err != nil {
			log.Fatalf("Level %d: %v", n, err)
		}

		fmt.Printf("Level %d: kid starts screen %d block %d, %d active guards -> %s\n",
			n, lvl.Info.KidStartScreen, lvl.Info.KidStartBlock,
			lvl.Info.ActiveGuards(), path)
		exported++
	}

	fmt.Printf("Exported %d levels\n", exported)
}
