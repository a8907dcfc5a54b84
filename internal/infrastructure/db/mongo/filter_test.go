package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserFilter(t *testing.T) {
	if f := userFilter(""); len(f) != 0 {
		t.Errorf("empty search must match everything, got %v", f)
	}

	f := userFilter("a.b")
	or, ok := f["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected $or with two branches, got %v", f)
	}
	name := or[0].(bson.M)["name"].(bson.M)["$regex"].(primitive.Regex)
	if name.Pattern != `a\.b` || name.Options != "i" {
		t.Errorf("unexpected regex: %+v", name)
	}
}

func TestFormFilter(t *testing.T) {
	if f := formFilter(""); len(f) != 0 {
		t.Errorf("empty category must match everything, got %v", f)
	}
	re := formFilter("IT (hw)")["category"].(bson.M)["$regex"].(primitive.Regex)
	if re.Pattern != `^IT \(hw\)$` || re.Options != "i" {
		t.Errorf("unexpected regex: %+v", re)
	}
}

func TestPageOptions(t *testing.T) {
	o := pageOptions("created_at", 3, 20)
	if o.Skip == nil || *o.Skip != 40 {
		t.Errorf("Skip = %v, want 40", o.Skip)
	}
	if o.Limit == nil || *o.Limit != 20 {
		t.Errorf("Limit = %v, want 20", o.Limit)
	}

	o = pageOptions("created_at", 0, 10)
	if *o.Skip != 0 {
		t.Errorf("page below 1 must start at 0, got %d", *o.Skip)
	}
}
