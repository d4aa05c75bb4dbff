// Package render turns a camera snapshot into a frame of packed pixels.
//
// A Renderer splits the image into contiguous row ranges, one per worker, and
// evaluates a Shader for every pixel. Workers are started fresh for each frame and
// all of them are joined before RenderFrame returns, so the buffer can be presented
// as soon as the call completes. Row ranges never overlap, which is the only thing
// keeping concurrent writes apart; no locks are taken in the pixel loop.
package render
