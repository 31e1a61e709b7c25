// Package tracer provides OpenTelemetry tracing for the storage client.
//
// NewClient installs a TracerProvider (optionally exporting over OTLP HTTP)
// as the global provider. The returned Tracer starts spans, records errors
// on them and converts plain maps into span attributes:
//
//	t := tracer.NewClient(tracer.Config{ServiceName: "ingest"}, log)
//
//	ctx, span := t.StartSpan(ctx, "s3.bucket_exists")
//	defer span.End()
//	t.SetAttributes(span, map[string]interface{}{"s3.bucket": "media"})
//	if err != nil {
//		t.RecordErrorOnSpan(span, err)
//	}
//
// Use FXModule to get the same wiring with shutdown on application stop.
package tracer
