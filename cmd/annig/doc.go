// Package main hosts the annig CLI entrypoint and command graph.
//
// annig is run from inside an album directory named like
// "[2019-04-24][LACA-9675~6] Title [2 Discs]". The get command looks the
// release up on MusicBrainz, rebuilds the credited artist hierarchy of the
// album and every track, and writes an album record into the Anni metadata
// repository. history, cache, and config expose the generation history, the
// artist cache, and configuration scaffolding.
//
// Keep this package lean: behaviour lives in the internal packages and the
// commands here only wire configuration, logging, and output together.
package main
