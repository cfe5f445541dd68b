/*
Package contiguous provides an allocator-aware, contiguous dynamic array and its
supporting parts.

Package vector holds the dynamic array itself. Package alloc defines the allocator
capability vectors draw their storage from, together with the hooks element types
may implement to take part in copying, relocation and destruction. Package maybe
holds optional values.

This package contains element generators, which produce the i-th element of a
sequence on request. Generators are used to create vectors of a given size:

    vec, err := vector.Generate(10, contiguous.Iota(1, 2))  // 1, 3, 5, …, 19

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contiguous
