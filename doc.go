// Package bgremove strips a flat or checkered background colour from an
// image by zeroing the alpha channel of every pixel that matches a colour
// predicate.
//
// Two predicates ship with the package: CheckeredGray, which targets the mid
// gray squares that image editors paint behind "transparent" exports, and
// NearWhite, which targets a plain white background. Everything works in
// memory on *image.NRGBA buffers; the cmd/ tools wrap it for files on disk.
package bgremove
