// Package cli implements the infer command-line interface.
//
// # Overview
//
// infer runs the inference HTTP API and acts as its client. The same
// validation and prediction code backs both, so a payload rejected by the
// server is rejected locally with the same field errors.
//
// # Commands
//
// serve - Run the HTTP API server:
//
//	infer serve [--config FILE] [--env-file FILE] [--host HOST] [--port PORT]
//
// Settings resolve from built-in defaults, the config file, the dotenv file
// and INFER_* environment variables, in that order. Flags override them all.
//
// predict - Compute a prediction:
//
//	infer predict -x 4 -y 2 [--model NAME] [--server URL] [--output FILE]
//
// Without --server the prediction runs in-process. With --server the payload
// is posted to <server>/api/predict. The payload can also come from --input,
// which accepts a file path, an http(s) URL or a ConfigMap URI
// (cm://namespace/name).
//
// version - Print build information:
//
//	infer version [--format text|json|yaml]
//
// # Output
//
// predict and version write through the serializer package: stdout by
// default, a file path, or a ConfigMap URI. Supported formats are json,
// yaml and table.
//
// # Global Flags
//
//	--log-level  debug, info, warn or error (env INFER_LOG_LEVEL)
package cli
