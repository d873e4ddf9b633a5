package main

// registerPrimitives wires every primitive group into the registry. Order
// mirrors catalogue.
func registerPrimitives(r *Registry) {
	registerStackPrimitives(r)
	registerArithPrimitives(r)
	registerIOPrimitives(r)
	registerVarPrimitives(r)
	registerMemPrimitives(r)
	registerTypePrimitives(r)
	registerStringPrimitives(r)
	registerListPrimitives(r)
	registerDictPrimitives(r)
}
