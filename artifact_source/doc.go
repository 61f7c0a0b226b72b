// Package artifact_source fetches the dataset snapshot from its remote location and writes it to the local artifact path.
//
// A [Source] knows how to download from one kind of location:
//   - [HttpSource] for http and https urls
//   - [AwsS3BucketSource] for s3://bucket/key urls
//   - [GcpStorageBucketSource] for gs://bucket/object urls
//   - [FileSystemSource] for file:// urls and bare paths
//
// The [Fetcher] wraps a Source with a rate limiter and converts every failure into a [FetchError].
// There is no retry - a failed fetch halts the pipeline.
package artifact_source
