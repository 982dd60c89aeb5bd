package geocode

import "testing"

func TestBuildGeocodeQuery(t *testing.T) {
	q := BuildGeocodeQuery("Av. Pedro Montt 1500", "Valdivia", "Chile")
	if q != "Av. Pedro Montt 1500, Valdivia, Chile" {
		t.Fatalf("unexpected query: %s", q)
	}
}

func TestBuildGeocodeQuerySkipsRepeatedParts(t *testing.T) {
	q := BuildGeocodeQuery("Picarte 2300, Valdivia", "valdivia", "")
	if q != "Picarte 2300, Valdivia" {
		t.Fatalf("unexpected query: %s", q)
	}
	if q := BuildGeocodeQuery("", "", "Chile"); q != "Chile" {
		t.Fatalf("unexpected query: %s", q)
	}
}
