/*
Package vyakarana defines the grammatical vocabulary shared by every part of
rupavali.

It holds the enumerated derivation axes (lakāra, prayoga, puruṣa, vacana,
dhātu-pada, sanādi, kṛt), the request/response shapes of the derivation
engine port, and Pada, the tagged union describing one selectable generated
form. The package is pure data: no I/O, no dependencies beyond the standard
library.

Two conventions matter everywhere:

  - All Sanskrit text is carried in SLP1. Conversion to a display script is
    a presentation concern (see ports.Transliterator).
  - Wherever order is significant — paradigm rows, grid axes, UI lists —
    an explicit ordered slice (LakaraOrder, PurushaOrder, ...) is the
    source of truth, never map iteration or the numeric enum values.
*/
package vyakarana
