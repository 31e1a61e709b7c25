// Package probe implements the s3probe command line tool.
package probe
