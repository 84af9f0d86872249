package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

const defaultProductsFile = "productos.json"
const defaultCartsFile = "carrito.json"

// StorageConfig points the collection stores at their backing JSON files.
type StorageConfig struct {
	ProductsFile string `koanf:"productsfile"`
	CartsFile    string `koanf:"cartsfile"`
	// TolerateCorrupt makes an unparseable collection file read as an empty collection.
	TolerateCorrupt bool `koanf:"toleratecorrupt"`
}

// String returns a string representation of the StorageConfig.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  productsfile: %s\n", c.ProductsFile))
	b.WriteString(fmt.Sprintf("  cartsfile: %s\n", c.CartsFile))
	b.WriteString(fmt.Sprintf("  toleratecorrupt: %t\n", c.TolerateCorrupt))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	if c.ProductsFile == "" {
		log.Println("Using default value for productsfile")
		c.ProductsFile = defaultProductsFile
	}
	if c.CartsFile == "" {
		log.Println("Using default value for cartsfile")
		c.CartsFile = defaultCartsFile
	}
	if filepath.Clean(c.ProductsFile) == filepath.Clean(c.CartsFile) {
		return fmt.Errorf("products and carts must be stored in different files: %s", c.ProductsFile)
	}
	return nil
}
