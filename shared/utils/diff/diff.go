// Package diff computes the minimal change-set between a stored record
// projection and a requested update.
package diff

// Changed returns the keys present in requested whose value differs
// from current. Keys absent from requested are left untouched: an
// omitted field means "no change", never "clear the field".
func Changed(current, requested map[string]interface{}) map[string]interface{} {
	changes := make(map[string]interface{})
	for key, value := range requested {
		if existing, ok := current[key]; !ok || existing != value {
			changes[key] = value
		}
	}
	return changes
}
