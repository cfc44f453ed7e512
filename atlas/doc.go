// Package atlas carves rectangles out of bitmaps into shared texture pages.
//
// A Carver copies a sub-rectangle of any image.Image into an atlas page
// created through a gpucontext.TextureCreator and returns an *Image: the
// texture, the texture-coordinate rectangle of the carved pixels, and their
// size. Many images share one page. A page is destroyed when the last image
// on it is released.
//
// # Edge Bleeding
//
// Linear filtering reads neighbouring texels, so sampling at the border of a
// carved rectangle would pull in whatever sits next to it on the page. Each
// edge of a carve is either soft or hard:
//
//   - Soft edges get one pixel of padding that repeats the source edge
//     pixel. Sampling exactly on the edge yields the edge pixel.
//   - Hard edges get no padding. The texture coordinates sit flush on the
//     source edge so tiles drawn side by side meet without gaps. The packer
//     places blocks directly next to each other, so filtering at a hard
//     edge may read the neighbouring block.
//
// Use hard edges only where tiles are meant to abut, such as tile maps cut
// from one bitmap.
//
// # Lifetime
//
// Carving never rewrites pixels that belong to a live image. Regions are
// not reused while their page lives; a page whose images have all been
// released is destroyed and its space is gone.
package atlas
