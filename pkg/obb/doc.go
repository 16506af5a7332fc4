// Package obb models oriented bounding boxes for furniture parts.
// An OBB is derived from a part's size, world position, and Euler
// rotation; its six faces and twelve edges are the raw material the
// snap and resize engines pair up.
package obb
