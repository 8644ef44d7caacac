/*
Package topology generates the random dependency relation of a network.

Edge generation is a pluggable strategy: the two built-in generators draw
node pairs uniformly but differ in edge semantics. UniformDirected
deduplicates by ordered pair and feeds only the target's dependency list;
UniformUndirected deduplicates by unordered pair and populates both
endpoints. The two yield different in-degree distributions, so the choice
is part of an experiment's definition rather than hard-coded.

Generators return the raw relation; callers apply Adjacency.Cleanup to give
isolated nodes a self-dependency before building rules on top.
*/
package topology
