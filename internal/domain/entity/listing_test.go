package entity

import (
	"testing"

	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
)

func TestNewListing_StampsBrokerAndDefaults(t *testing.T) {
	l := NewListing(5, ListingAttributes{Name: "Villa", Price: 100000})

	if l.BrokerID != 5 || l.OwnerID() != 5 {
		t.Errorf("broker not stamped: %d", l.BrokerID)
	}
	if l.Currency != valueobject.DefaultCurrency {
		t.Errorf("got currency %q", l.Currency)
	}
	if l.Status != valueobject.ListingStatusSale {
		t.Errorf("got status %q", l.Status)
	}
	if l.Features == nil {
		t.Error("features should default to an empty object")
	}
}

func TestListing_Update_KeepsBroker(t *testing.T) {
	l := NewListing(5, ListingAttributes{Name: "Villa", Price: 1})
	l.ID = 11

	l.Update(ListingAttributes{Name: "Villa 2", Price: 2})

	if l.BrokerID != 5 {
		t.Errorf("broker changed to %d", l.BrokerID)
	}
	if l.ID != 11 || l.Name != "Villa 2" {
		t.Errorf("unexpected listing after update: %+v", l)
	}
}

func TestListing_AssignBroker_RecordsAssigner(t *testing.T) {
	l := NewListing(5, ListingAttributes{Price: 1})

	l.AssignBroker(8, 1)

	if l.BrokerID != 8 {
		t.Errorf("got broker %d, want 8", l.BrokerID)
	}
	if l.AssignedByID == nil || *l.AssignedByID != 1 {
		t.Errorf("assigned_by not recorded: %v", l.AssignedByID)
	}
}

func TestListing_RequiresUniqueAddress(t *testing.T) {
	if !NewListing(1, ListingAttributes{ComplexName: "  "}).RequiresUniqueAddress() {
		t.Error("blank complex name should require a unique address")
	}
	if NewListing(1, ListingAttributes{ComplexName: "Sunrise"}).RequiresUniqueAddress() {
		t.Error("listing in a named complex is exempt")
	}
}

func TestListing_NormalizeTrimsComplexName(t *testing.T) {
	l := NewListing(1, ListingAttributes{ComplexName: " \t "})
	if l.ComplexName != "" {
		t.Errorf("blank complex name stored as %q", l.ComplexName)
	}

	l.Update(ListingAttributes{ComplexName: "  Sunrise "})
	if l.ComplexName != "Sunrise" {
		t.Errorf("got complex name %q", l.ComplexName)
	}
	if l.RequiresUniqueAddress() {
		t.Error("trimmed complex name should stay exempt")
	}
}

func TestNewListing_MediaDefaultsToEmptyLists(t *testing.T) {
	l := NewListing(1, ListingAttributes{Photos: []string{"https://cdn.example.com/1.jpg"}})

	if len(l.Photos) != 1 {
		t.Errorf("photos not kept: %v", l.Photos)
	}
	if l.Videos == nil || len(l.Videos) != 0 {
		t.Errorf("videos should default to an empty list: %v", l.Videos)
	}
}
