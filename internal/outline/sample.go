package outline

// SampleOutline is a folder structure for civil engineers working with BIM.
// The prose and notes above the first heading are ignored by Parse.
const SampleOutline = `This folder structure is useful for civil engineers (designers) who working with BIM.

Notes:
[1] WIB (Work in progress)
[2] EIP (Employers Information Requirements)
[3] RVT (Revit)
[4] CAD (Autocad)
[5] DWG (Autocad)

# PROJECT NAME
## WIB
### CALCULATIONS
#### SAP
#### SAFE
#### ETABS
### REPORT
### RVT
### TEKLA
### CAD
## EIP
### YYMMDD-FOLDER NAME 1
### YYMMDD-FOLDER NAME 2
## PUBLISHED
### CALCULATIONS
#### SAP
#### SAFE
#### ETABS
### DWG
### PDF
### REPORT
### REVIT IFC`
