/*
Package persistent holds persistent data structures with structural sharing.

A persistent structure is never modified in place: building a new version
re-uses the parts of older versions it has in common with them, so two trees
which are mostly copies of each other share most of their memory.

Sub-package bintree offers a binary tree whose nodes are shared between
handles and reference counted explicitly. Clients acquire and release handles
themselves, which makes the lifetime of every node observable and lets tests
check that no node is leaked or freed twice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
