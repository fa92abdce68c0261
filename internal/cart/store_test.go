package cart

import (
	"testing"

	"github.com/maisonluxe/storefront/pkg/types"
	"github.com/shopspring/decimal"
)

func product(id int, price string) types.Product {
	return types.Product{
		ID:    id,
		Title: "product",
		Price: decimal.RequireFromString(price),
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	store := NewStore()

	store.AddItem(product(1, "10.00"))
	store.AddItem(product(1, "10.00"))

	lines := store.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	store.AddItem(product(3, "1.00"))
	store.AddItem(product(1, "1.00"))
	store.AddItem(product(2, "1.00"))
	store.AddItem(product(1, "1.00"))

	lines := store.Lines()
	wantOrder := []int{3, 1, 2}
	if len(lines) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d", len(wantOrder), len(lines))
	}
	for i, id := range wantOrder {
		if lines[i].Product.ID != id {
			t.Fatalf("expected id %d at position %d, got %d", id, i, lines[i].Product.ID)
		}
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	store := NewStore()
	item := product(1, "10.00")
	store.AddItem(item)

	item.Title = "renamed after insertion"

	if got := store.Lines()[0].Product.Title; got != "product" {
		t.Fatalf("expected snapshot to be immune to later changes, got %q", got)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))

	store.RemoveItem(1)
	store.RemoveItem(1)
	store.RemoveItem(42)

	if len(store.Lines()) != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestSetQuantityUpdatesExistingLine(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))

	store.SetQuantity(1, 5)

	if got := store.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))

	store.SetQuantity(1, 0)
	if len(store.Lines()) != 0 {
		t.Fatal("expected line removed at quantity 0")
	}

	store.AddItem(product(2, "10.00"))
	store.SetQuantity(2, -3)
	if len(store.Lines()) != 0 {
		t.Fatal("expected line removed at negative quantity")
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))

	store.SetQuantity(999, 5)

	lines := store.Lines()
	if len(lines) != 1 || lines[0].Product.ID != 1 {
		t.Fatalf("expected cart unchanged, got %v", lines)
	}
}

func TestSubtotalWeighsQuantity(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))
	store.AddItem(product(1, "10.00"))
	store.AddItem(product(2, "5.50"))

	want := decimal.RequireFromString("25.50")
	if got := store.Subtotal(); !got.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, got)
	}
}

func TestSubtotalKeepsDecimalPrecision(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "0.10"))
	store.AddItem(product(2, "0.20"))

	want := decimal.RequireFromString("0.30")
	if got := store.Subtotal(); !got.Equal(want) {
		t.Fatalf("expected exact %s, got %s", want, got)
	}
}

func TestItemCountCountsUnits(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))
	store.AddItem(product(1, "10.00"))
	store.AddItem(product(2, "5.50"))

	if got := store.ItemCount(); got != 3 {
		t.Fatalf("expected 3 units, got %d", got)
	}
}

func TestVisibilityTransitions(t *testing.T) {
	store := NewStore()
	if store.IsOpen() {
		t.Fatal("expected cart closed initially")
	}

	store.Open()
	if !store.IsOpen() {
		t.Fatal("expected cart open")
	}

	store.Toggle()
	if store.IsOpen() {
		t.Fatal("expected toggle to close")
	}

	store.Toggle()
	store.Close()
	if store.IsOpen() {
		t.Fatal("expected cart closed")
	}
}

func TestClearEmptiesCart(t *testing.T) {
	store := NewStore()
	store.AddItem(product(1, "10.00"))
	store.AddItem(product(2, "5.50"))

	store.Clear()

	if len(store.Lines()) != 0 || store.ItemCount() != 0 {
		t.Fatal("expected empty cart after clear")
	}
	if !store.Subtotal().Equal(decimal.Zero) {
		t.Fatalf("expected zero subtotal, got %s", store.Subtotal())
	}
}
