// Package terminals implements the punch event sources the sync
// orchestrator pulls from.
//
// Two source kinds exist: HTTPSource polls a terminal collector's REST
// endpoint with retries, and StorageSource reads the JSON dumps a collector
// drops into the object storage bucket. Both satisfy syncer.Source; device
// discovery and the hardware protocol itself stay outside this service.
package terminals
