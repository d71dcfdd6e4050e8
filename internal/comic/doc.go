// Package comic models an open comic: its metadata and the current page cursor.
//
// # Overview
//
// A comic is a numbered run of page images plus a cover (page 0). Its
// metadata lives in an info.json file next to the images:
//
//	{"title": "Demo", "extension": "jpg", "length": 5, "sections": [0, 2]}
//
// length counts pages excluding the cover, so the valid cursor range is
// [0, length]. sections lists the first page of each part in display order.
//
// # Navigation
//
// Previous and Next saturate at the bounds so keyboard navigation never needs
// its own checks. JumpTo is deliberately unclamped: it is fed by fragments and
// bookmarks that may be stale for the comic being shown.
//
// # Image paths
//
// Paths are built as <base>/<id>/<pattern>.<extension>, where a Pattern such
// as "page-##" zero pads the page number to the length of the '#' run:
//
//	c.PagePath(5)  // ../../comics/demo/page-05.jpg
//	c.ThumbPath(5) // ../../comics/demo/thumb-05.jpg
//
// # Errors
//
// Load is all-or-nothing. Any fetch or decode failure returns a *LoadError
// naming the comic and leaves every field as it was.
package comic
