package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/supply-dashboard/supply-dashboard-backend/src/dtos"
	"github.com/supply-dashboard/supply-dashboard-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

// Column order of the item import sheet. The first row is a header.
const (
	importColSKU = iota
	importColName
	importColDescription
	importColUnitPrice
)

// InventorySheet is the sheet name of the inventory export workbook.
const InventorySheet = "Inventory"

// ImportItemsFromExcel creates one Item per data row of the first sheet of an
// .xlsx workbook. Invalid rows are reported and skipped; valid rows are kept
// even when others fail.
func (s *ItemService) ImportItemsFromExcel(ctx context.Context, r io.Reader) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheets[0], err)
	}

	result := &dtos.ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}

		item, err := itemFromRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if _, err := s.CreateItem(ctx, item); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: could not create item %q: %v", i+1, item.Name, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func itemFromRow(row []string) (*models.ItemModel, error) {
	item := &models.ItemModel{
		SKU:  cell(row, importColSKU),
		Name: cell(row, importColName),
	}
	if item.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if description := cell(row, importColDescription); description != "" {
		item.Description = &description
	}
	if price := cell(row, importColUnitPrice); price != "" {
		parsed, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price %q", price)
		}
		item.UnitPrice = parsed
	}
	return item, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ExportInventoriesToExcel writes every Inventory record to an .xlsx workbook.
func (s *InventoryService) ExportInventoriesToExcel(ctx context.Context, w io.Writer) error {
	inventories, err := s.GetAllInventories(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), InventorySheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "SKU", "Item", "Warehouse", "Quantity"}
	if err := f.SetSheetRow(InventorySheet, "A1", &header); err != nil {
		return err
	}

	for i, inv := range inventories {
		var sku, itemName, warehouseName string
		if inv.Item != nil {
			sku, itemName = inv.Item.SKU, inv.Item.Name
		}
		if inv.Warehouse != nil {
			warehouseName = inv.Warehouse.Name
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{inv.ID, sku, itemName, warehouseName, inv.Quantity}
		if err := f.SetSheetRow(InventorySheet, cellRef, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
