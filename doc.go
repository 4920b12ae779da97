/*
Package paa implements read/write access to the PAA texture container used
by the Arma-family game engine.

A PAA file bundles a mipmap pyramid (optionally DXT1/DXT5 block-compressed
and LZO1X-wrapped) together with a small set of "tagg" metadata records the
engine reads at runtime: average color, maximum color, a transparency flag,
and a table of per-mipmap byte offsets.

The package focuses on the container codec itself: parsing and serializing
the binary layout, generating the mipmap pyramid, computing the tagg
metadata, and compressing/decompressing the pixel blocks. Source-image
decoding (PNG/TGA/JPEG) and PNG/JPEG encoding are abstracted behind the
ImageDecoder/ImageEncoder interfaces in image.go; DefaultImageCodec wires
those to the standard library plus golang.org/x/image for a wider set of
input formats.
*/
package paa
