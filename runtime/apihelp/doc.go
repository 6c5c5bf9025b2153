// Package apihelp provides runtime method help for Go types.
//
// # Overview
//
// Developers register short descriptions for selected methods of their types
// and can, at any time, ask for a formatted listing of those methods filtered
// by a search term. Types that participate in a relational-mapping layer also
// list their declared relations and parameterised query scopes.
//
// # Classes and ancestors
//
// A class is a named Go type, identified by its reflect.Type with pointer
// indirections removed, so User and *User are the same class. The ancestors of
// a struct type are the types it embeds, walked breadth-first by embedding
// depth, which is the order Go uses to promote methods. Descriptions
// registered on an embedded type therefore show up on every type that embeds
// it.
//
// # Example Usage
//
//	help := apihelp.New()
//
//	apihelp.Register[User](help, "full_name", "Returns display name")
//	apihelp.Register[Order](help, "total", "Order total", apihelp.WithParams("currency"))
//
//	// Class-level listing
//	for _, line := range help.Query(User{}, "") {
//		fmt.Println(line)
//	}
//
//	// Instance-level listing resolves instance methods and their signatures
//	for _, line := range help.QueryInstance(&order, "tot") {
//		fmt.Println(line)
//	}
//
// # Class-level functions
//
// Go has no class methods. A type publishes functions that belong to the type
// rather than to an instance (constructors, finders) by implementing
// ClassFuncs. These are reported with a "self." prefix.
//
// # Relational metadata
//
// Types that implement RelationalParticipant, or that a RelationalProvider
// recognises, get RELATIONS and SCOPES sections. Types that do not
// participate simply have no such sections; this is never an error.
//
// # Registration failures
//
// Register returns a *RegistrationError outside production. In the
// production environment the failure is logged with a bounded stack trace and
// swallowed, so a bad registration never prevents an application from
// starting.
package apihelp
