// Package errors provides the structured error type shared by the lookup,
// derivation and HTTP layers.
//
// A lookup miss is not an error in the store packages; it becomes one only
// when a caller decides the record was required:
//
//	m, ok, err := st.Measurement(ctx, foodID, nutrID)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeInternal, "measurement lookup failed", err)
//	}
//	if !ok {
//	    return errors.NewWithContext(errors.ErrCodeNotFound,
//	        "no measurement recorded for food and nutrient",
//	        map[string]any{"food_id": foodID, "nutr_id": nutrID})
//	}
package errors
