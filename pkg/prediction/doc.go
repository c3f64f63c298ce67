// Package prediction implements the inference endpoint: payload validation,
// the placeholder model, and its HTTP adapter.
//
// Validation is a separate step that knows nothing about HTTP. Decode turns a
// raw JSON or YAML body into a typed Request, and Validate does the same for
// an already decoded object:
//
//	req, err := prediction.Decode(r.Body, r.Header.Get("Content-Type"))
//	if err != nil {
//	    var verr *prediction.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Errors lists each failing field
//	    }
//	}
//	res := prediction.Predict(*req, "cnn")
//
// Both x and y must be present and finite. Numbers, integers and numeric
// strings such as "4.0" are accepted. Everything else is reported as a
// FieldError with a machine-readable type:
//
//	missing                key absent, or empty body
//	float_parsing          string that is not a number
//	float_type             null, boolean, array or object
//	finite_number          NaN, infinity, or a value that overflows float64
//	json_invalid           body is not valid JSON or YAML
//	model_attributes_type  body is valid but not an object
//
// Predict multiplies x by y and labels the result with the model name, which
// defaults to DefaultModelName. No model is loaded.
//
// Handler exposes Predict as POST /api/predict?model_name=NAME and reports
// validation failures as 422 VALIDATION_FAILED with the field list under
// details.detail.
package prediction
