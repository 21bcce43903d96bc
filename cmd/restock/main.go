package main

import (
	"errors"
	"flag"
	"log"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Operational helper: set or add stock for an item code directly, outside
// the sale path. Creates the inventory record if the item is stock-tracked
// but has none yet.
func main() {
	itemCode := flag.String("code", "", "item code to restock (required)")
	setQty := flag.Int("set", -1, "set on-hand quantity to this value")
	addQty := flag.Int("add", 0, "add this many units to on-hand quantity")
	reorder := flag.Int("reorder", -1, "set reorder level")
	flag.Parse()

	if *itemCode == "" {
		log.Fatal("❌ -code is required")
	}
	if *setQty < 0 && *addQty == 0 && *reorder < 0 {
		log.Fatal("❌ nothing to do: pass -set, -add or -reorder")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	itemRepo := repository.NewItemRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)

	// 3. Item must exist and be stock-tracked
	item, err := itemRepo.FindByCode(*itemCode)
	if err != nil {
		log.Fatalf("❌ Item %s not found: %v", *itemCode, err)
	}
	if !item.IsStockItem {
		log.Fatalf("❌ Item %s (%s) is not stock-tracked", item.ItemName, item.ItemCode)
	}

	// 4. Find or create the inventory record
	record, err := inventoryRepo.FindByItemCode(nil, *itemCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = &model.InventoryRecord{ItemCode: *itemCode, ReorderLevel: 10}
		if err := inventoryRepo.Create(record); err != nil {
			log.Fatalf("❌ Failed to create inventory record: %v", err)
		}
		log.Printf("Created inventory record for %s", *itemCode)
	} else if err != nil {
		log.Fatalf("❌ Failed to read inventory: %v", err)
	}

	// 5. Apply changes
	if *setQty >= 0 {
		record.Quantity = *setQty
	}
	if *addQty != 0 {
		record.Quantity += *addQty
	}
	if record.Quantity < 0 {
		log.Fatalf("❌ Resulting quantity would be negative (%d)", record.Quantity)
	}
	if *reorder >= 0 {
		record.ReorderLevel = *reorder
	}

	if err := inventoryRepo.Update(record); err != nil {
		log.Fatalf("❌ Failed to update inventory: %v", err)
	}

	log.Printf("✅ %s (%s): quantity=%d reorder_level=%d", item.ItemName, record.ItemCode, record.Quantity, record.ReorderLevel)
}
