// Package publish uploads rendered pages to S3.
//
// Each page is stored under prefix + name + ".html" with an HTML content
// type:
//
//	client := publish.NewS3Client("eu-west-1")
//	p, err := publish.New(client, "my-site", publish.WithPrefix("reports/"))
//	key, err := p.Publish(ctx, "summary", html)
//
// The Publisher only needs the PutObject call, so tests and other
// S3-compatible stores can supply their own ObjectPutter.
package publish
