// Package library locates comics and their page images.
//
// A Source is rooted at an image base. Bases starting with http:// or
// https:// are served by Client, which issues GET requests for info.json and
// HEAD requests to probe page images. Anything else is a local directory
// served by Dir.
//
// Both sources decode info.json through DecodeInfo, which validates the
// document against a JSON schema before unmarshalling it, so a malformed
// file never yields a partially filled comic.Info.
package library
