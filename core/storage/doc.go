// Package storage wraps the Minio/S3 client behind a narrow interface.
//
// Two consumers use it: the storage punch source, which reads the JSON
// punch dumps terminal collectors drop into the bucket, and the export
// uploader, which puts CSV ledger snapshots back. The Client interface
// exists so both can be tested against the testify mock in storage/mocks
// without a live object store.
package storage
