package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/pkg/publish"
	"github.com/vango-dev/domkit/pkg/site"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "publish [spec...]",
		Short: "Render specs and upload them to S3",
		Long: `Render spec files and upload each page to an S3 bucket as
<prefix><name>.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. AWS_ENDPOINT_URL points the client at an
S3-compatible endpoint.

Examples:
  domkit publish --bucket my-site
  domkit publish index --prefix preview/
  domkit publish --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}

			p, err := publish.New(publish.NewS3Client(cfg.Publish.Region), cfg.Publish.Bucket,
				publish.WithPrefix(cfg.Publish.Prefix),
				publish.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if list {
				keys, err := p.Published(cmd.Context())
				if err != nil {
					return err
				}
				for _, key := range keys {
					info(out, "%s", key)
				}
				return nil
			}

			s := site.New(cfg.SpecsPath(), siteOptions(cfg, logger)...)
			rendered, err := s.RenderAll(cmd.Context(), args...)
			if err != nil {
				return err
			}
			pages := make([]publish.Page, len(rendered))
			for i, r := range rendered {
				pages[i] = publish.Page{Name: r.Name, HTML: r.HTML}
			}

			keys, err := p.PublishAll(cmd.Context(), pages)
			for _, key := range keys {
				info(out, "s3://%s/%s", cfg.Publish.Bucket, key)
			}
			if err != nil {
				return err
			}
			success(out, "Published %d page(s)", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from domkit.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix (default from domkit.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from domkit.json or AWS_REGION)")
	cmd.Flags().BoolVar(&list, "list", false, "List published pages instead of publishing")

	return cmd
}
