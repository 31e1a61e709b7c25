package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/s3connect/v1/s3client"
)

// ErrChecksFailed is returned when at least one bucket could not be validated.
var ErrChecksFailed = errors.New("bucket checks failed")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [bucket...]",
		Short: "Check that buckets exist and are reachable",
		Long: `Builds the storage client from the resolved settings and checks each
bucket with a single request. Without arguments the s3.bucket setting is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), args)
		},
	}
}

type checkResult struct {
	bucket string
	err    error
}

func (a *app) runCheck(ctx context.Context, buckets []string) error {
	src, client, err := a.buildClient(ctx)
	if err != nil {
		return err
	}

	if len(buckets) == 0 {
		raw, ok := src.Get(KeyBucket)
		name := cast.ToString(raw)
		if !ok || name == "" {
			return fmt.Errorf("no bucket given and %s is not set", KeyBucket)
		}
		buckets = []string{name}
	}

	validator := s3client.NewValidator(a.log, nil, nil)
	results := make([]checkResult, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	if a.opts.parallel > 0 {
		g.SetLimit(a.opts.parallel)
	}
	for i, bucket := range buckets {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(gctx, a.opts.timeout)
			defer cancel()
			results[i] = checkResult{
				bucket: bucket,
				err:    validator.ValidateBucketExists(checkCtx, bucket, client),
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.err == nil {
			fmt.Fprintf(a.out, "ok\t%s\n", r.bucket)
			continue
		}
		failed++
		fmt.Fprintf(a.out, "fail\t%s\t%s\t%v\n", r.bucket, reason(r.err), r.err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(buckets))
	}
	return nil
}

func reason(err error) string {
	switch s3client.Classify(err) {
	case s3client.ErrBucketNotFound:
		return "not_found"
	case s3client.ErrAccessDenied:
		return "access_denied"
	case s3client.ErrConnectionFailed:
		return "unreachable"
	case s3client.ErrDelegatedCredentialsUnavailable:
		return "no_credentials"
	default:
		return "error"
	}
}
