// Package header provides the recursive mapping model a pipeline is compiled
// from, together with the coercer that builds it from a raw description.
//
// A Description is an ordered list of entries, each naming a target key and
// a set of options:
//
//	from:   source key (defaults to the target key)
//	type:   "hash" for a nested tuple, "array" for a collection
//	header: nested description (required for hash and array)
//	wrap:   build the nested tuple out of flat sibling keys
//	group:  build the collection by folding tuples sharing all other keys
//
// Coerce validates a Description once and returns an immutable Header tree
// whose attributes are classified by Shape (scalar, nested, collection) and
// Combinator (none, wrap, group).
//
// # YAML
//
// Descriptions can be loaded from YAML:
//
//	model: User
//	attributes:
//	  - id
//	  - name: name
//	    from: user_name
//	  - name: tasks
//	    type: array
//	    group: true
//	    model: Task
//	    header:
//	      - name: title
//	        from: task_title
//
// Model names are resolved through a model.Registry.
package header
