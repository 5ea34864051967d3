/*
Package declfile builds models from YAML declaration files.

A declaration file is the data-driven counterpart of calling the builder by
hand: one document declares models, their configuration and their members,
and Parse freezes them in file order.

Example:

	models:
	  - name: Color
	    fields: [pk, label]
	    primaryKey: pk
	    displayField: label
	    members:
	      - name: RED
	        fields: {pk: 1, label: Red}
	      - name: GREEN
	        row: [2, Green]

	  - name: ExtendedColor
	    extends: Color
	    members:
	      - name: BLUE
	        fields: {pk: 3, label: Blue}

Each member uses exactly one of the three builder forms: a "fields" mapping,
a positional "row" zipped against the model's field order, or a bare "value"
bound to the model's default field. A model may extend one declared earlier
in the same file, or one already present in the global model registry.

All declaration mistakes surface as ConfigurationError values from the
errors package, the same kind the builder itself reports.
*/
package declfile
