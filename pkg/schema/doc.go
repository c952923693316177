// Package schema decodes descriptor and data documents from YAML, JSON and
// TOML files so they can be fed to the validator.
//
// A descriptor document holds one value: a string ("posInt|str"), a list whose
// first element is a type name and the rest its arguments (["str",
// {minLength: 3}]), or a mapping from keys to descriptors (a shape). Data
// documents are arbitrary; a YAML stream may carry several.
//
// Decoder output is normalized to map[string]any, []any and scalars.
//
//	desc, err := schema.LoadDescriptor("point.yaml")
//	if err != nil {
//	    return err
//	}
//	docs, err := schema.LoadDocuments("points.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, doc := range docs {
//	    if _, err := v.Validate(desc, doc); err != nil {
//	        return err
//	    }
//	}
package schema
