// Command s3probe resolves storage client settings and checks buckets.
//
//	s3probe check media archive
//	s3probe whoami --config /etc/app/settings.yaml
package main

import "github.com/Aleph-Alpha/s3connect/internal/probe"

func main() {
	probe.Execute()
}
