package fleet

import (
	"strconv"
	"strings"

	"github.com/zineb0v0/viaCargo/internal/domain"
)

// Schema reconciliation between backend record shapes and the canonical
// model. The backend's wire contract uses French domain-language names;
// older revisions leaked English aliases for some attributes and both
// shapes are still observed in history payloads. Alias lists are
// declared once here, priority-ordered (current contract name first),
// so different screens can no longer disagree on lookup order.
//
// Normalization is total: no input shape causes an error. Missing
// numeric attributes default to 0, missing strings to "". Outgoing
// writes always emit the current contract names only; the legacy
// aliases are read-side compatibility, never written back.

var (
	parcelIDAliases       = []string{"id_colis", "id"}
	parcelClientAliases   = []string{"nom_client", "client_name"}
	parcelDestAliases     = []string{"destination", "address"}
	parcelWeightAliases   = []string{"poids", "weight"}
	parcelDeadlineAliases = []string{"date_livraison", "deadline"}
	parcelStatusAliases   = []string{"statut", "status"}

	truckIDAliases       = []string{"id_camion", "id"}
	truckBrandAliases    = []string{"marque", "brand", "nom_camion"}
	truckCapacityAliases = []string{"capacite", "capacity"}
	truckStatusAliases   = []string{"status", "statut"}
)

// Status vocabularies differ between the wire (French) and the
// canonical model; both directions map unknown values through verbatim
// so normalization stays total and round-trips are lossless.
var parcelStatusByWire = map[string]domain.ParcelStatus{
	"en_stock":     domain.ParcelInStock,
	"en_livraison": domain.ParcelInDelivery,
	"livre":        domain.ParcelDelivered,
}

var parcelStatusToWire = map[domain.ParcelStatus]string{
	domain.ParcelInStock:    "en_stock",
	domain.ParcelInDelivery: "en_livraison",
	domain.ParcelDelivered:  "livre",
}

var truckStatusByWire = map[string]domain.TruckStatus{
	"disponible":   domain.TruckAvailable,
	"en_livraison": domain.TruckInDelivery,
	"hors_service": domain.TruckOutOfService,
}

var truckStatusToWire = map[domain.TruckStatus]string{
	domain.TruckAvailable:    "disponible",
	domain.TruckInDelivery:   "en_livraison",
	domain.TruckOutOfService: "hors_service",
}

// NormalizeParcel converts a raw backend parcel record into the
// canonical model, reading the first present alias per attribute.
func NormalizeParcel(raw map[string]any) domain.Parcel {
	return domain.Parcel{
		ID:          idField(raw, parcelIDAliases),
		ClientName:  stringField(raw, parcelClientAliases),
		Destination: stringField(raw, parcelDestAliases),
		WeightKg:    numberField(raw, parcelWeightAliases),
		Deadline:    stringField(raw, parcelDeadlineAliases),
		Status:      normalizeParcelStatus(stringField(raw, parcelStatusAliases)),
	}
}

// DenormalizeParcel emits the wire shape the current backend contract
// expects. The backend assigns identifiers, so the id is included only
// when the parcel already has one.
func DenormalizeParcel(p domain.Parcel) map[string]any {
	out := map[string]any{
		"nom_client":     p.ClientName,
		"destination":    p.Destination,
		"poids":          p.WeightKg,
		"date_livraison": p.Deadline,
		"statut":         denormalizeParcelStatus(p.Status),
	}
	if p.ID != "" {
		out["id_colis"] = p.ID
	}
	return out
}

// NormalizeTruck mirrors NormalizeParcel for truck records.
func NormalizeTruck(raw map[string]any) domain.Truck {
	return domain.Truck{
		ID:         idField(raw, truckIDAliases),
		Brand:      stringField(raw, truckBrandAliases),
		CapacityKg: numberField(raw, truckCapacityAliases),
		Status:     normalizeTruckStatus(stringField(raw, truckStatusAliases)),
	}
}

// DenormalizeTruck emits the wire shape for truck writes.
func DenormalizeTruck(t domain.Truck) map[string]any {
	out := map[string]any{
		"marque":   t.Brand,
		"capacite": t.CapacityKg,
		"status":   denormalizeTruckStatus(t.Status),
	}
	if t.ID != "" {
		out["id_camion"] = t.ID
	}
	return out
}

func normalizeParcelStatus(wire string) domain.ParcelStatus {
	if wire == "" {
		return ""
	}
	if s, ok := parcelStatusByWire[wire]; ok {
		return s
	}
	return domain.ParcelStatus(wire)
}

func denormalizeParcelStatus(s domain.ParcelStatus) string {
	if wire, ok := parcelStatusToWire[s]; ok {
		return wire
	}
	return string(s)
}

func normalizeTruckStatus(wire string) domain.TruckStatus {
	if wire == "" {
		return ""
	}
	if s, ok := truckStatusByWire[wire]; ok {
		return s
	}
	return domain.TruckStatus(wire)
}

func denormalizeTruckStatus(s domain.TruckStatus) string {
	if wire, ok := truckStatusToWire[s]; ok {
		return wire
	}
	return string(s)
}

// stringField returns the first present alias as a string; numbers
// found under a string attribute are formatted rather than dropped.
func stringField(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return s
		case float64:
			return formatNumber(s)
		case bool:
			return strconv.FormatBool(s)
		}
	}
	return ""
}

// numberField returns the first present alias as a float64. String
// values that parse as decimals are accepted; anything else counts as
// missing and defaults to 0.
func numberField(raw map[string]any, aliases []string) float64 {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// idField reads an identifier without assuming its wire type. Backend
// ids arrive as integers or strings depending on revision; both become
// the canonical opaque string form.
func idField(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch id := v.(type) {
		case string:
			return strings.TrimSpace(id)
		case float64:
			return formatNumber(id)
		}
	}
	return ""
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// anyID formats a value of unknown wire type (string or number) as a
// canonical id string. Used for payloads that carry bare id lists.
func anyID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return formatNumber(id)
	default:
		return ""
	}
}
