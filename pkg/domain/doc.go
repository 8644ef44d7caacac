/*
Package domain contains the core domain models for the kauffman engine.

It defines the fundamental entities of a random boolean network: node
identity, the adjacency relation (each node's ordered dependency list), the
truth-key codec, per-node transition rules, and the boolean state vector.
This package is kept pure and free of external dependencies like I/O or
randomness, following Hexagonal Architecture principles.

# Key Entities

  - NodeID: Index of a single boolean-valued node.
  - Adjacency: One ordered dependency list per node; list order fixes the
    bit positions of truth keys.
  - Rule: A total function from every dependency-state combination to an
    output bit.
  - StateVector: The current on/off value of every node, replaced wholesale
    on each step to realize synchronous semantics.
*/
package domain
