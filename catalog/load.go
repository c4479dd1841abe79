package catalog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/grailbio/base/log"
)

// Load walks data_dir/{genomes,regulators}/<species>/<assembly>/ and builds
// an immutable Catalog (spec.md §4.2). It returns a CatalogError only when
// data_dir itself cannot be listed; every other problem (a malformed
// description.json, a regulator JSON with no sibling BED, an unreadable
// species directory) is logged and skipped.
func Load(dataDir string) (*Catalog, error) {
	if _, err := os.ReadDir(dataDir); err != nil {
		return nil, newCatalogError(dataDir, err)
	}

	c := &Catalog{
		Genomes:    make(map[string]map[string]*Assembly),
		Regulators: make(map[string]map[string]map[string]*Experiment),
	}

	loadGenomes(filepath.Join(dataDir, "genomes"), c)
	loadRegulators(filepath.Join(dataDir, "regulators"), c)

	return c, nil
}

func loadGenomes(dir string, c *Catalog) {
	speciesDirs, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("catalog: no genomes directory under %s: %v", dir, err)
		return
	}
	for _, sd := range speciesDirs {
		if !sd.IsDir() {
			continue
		}
		species := sd.Name()
		speciesDir := filepath.Join(dir, species)
		description := loadDescription(filepath.Join(speciesDir, "description.json"), species)

		assemblyDirs, err := os.ReadDir(speciesDir)
		if err != nil {
			log.Error.Printf("catalog: cannot list genome assemblies for %s: %v", species, err)
			continue
		}
		assemblies := make(map[string]*Assembly)
		loaded := 0
		for _, ad := range assemblyDirs {
			if !ad.IsDir() {
				continue
			}
			assembly, err := loadAssembly(speciesDir, species, ad.Name(), description)
			if err != nil {
				log.Error.Printf("catalog: skipping assembly %s/%s: %v", species, ad.Name(), err)
				continue
			}
			assemblies[ad.Name()] = assembly
			loaded++
		}
		if loaded > 0 {
			c.Genomes[species] = assemblies
			log.Printf("catalog: loaded %d assembly/assemblies for species %s", loaded, species)
		}
	}
}

func loadDescription(path, species string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var desc map[string]any
	if err := json.Unmarshal(data, &desc); err != nil {
		log.Error.Printf("catalog: malformed description.json for species %s: %v", species, err)
		return nil
	}
	return desc
}

func loadAssembly(speciesDir, species, assembly string, description map[string]any) (*Assembly, error) {
	assemblyDir := filepath.Join(speciesDir, assembly)
	entries, err := os.ReadDir(assemblyDir)
	if err != nil {
		return nil, err
	}

	stemToRegion := make(map[string]Region, len(regionStems))
	for region, stem := range regionStems {
		stemToRegion[stem] = region
	}

	a := &Assembly{
		Species:     species,
		Name:        assembly,
		Regions:     make(map[Region]RegionFile),
		ChromSizes:  make(map[string]int64),
		Description: description,
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		path := filepath.Join(assemblyDir, name)

		if stem == assembly && ext == ".genome" {
			sizes, err := readChromSizes(path)
			if err != nil {
				log.Error.Printf("catalog: malformed chrom-size file %s: %v", path, err)
				continue
			}
			a.ChromSizes = sizes
			continue
		}

		region, ok := stemToRegion[stem]
		if !ok || (ext != ".gff" && ext != ".bed") {
			continue
		}
		// intergenic is the only region shipped as either .gff or .bed
		// (spec §9); prefer an already-indexed GFF file over a later .bed
		// with the same stem, since GFF is the canonical region shape.
		if existing, ok := a.Regions[region]; ok && !existing.IsBED {
			continue
		}
		a.Regions[region] = RegionFile{Path: path, IsBED: ext == ".bed"}
	}

	return a, nil
}

func readChromSizes(path string) (map[string]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sizes := make(map[string]int64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			continue
		}
		length, err := strconv.ParseInt(cols[1], 10, 64)
		if err != nil {
			continue
		}
		sizes[cols[0]] = length
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sizes, nil
}

func loadRegulators(dir string, c *Catalog) {
	speciesDirs, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("catalog: no regulators directory under %s: %v", dir, err)
		return
	}
	for _, sd := range speciesDirs {
		if !sd.IsDir() {
			continue
		}
		species := sd.Name()
		speciesDir := filepath.Join(dir, species)

		assemblyDirs, err := os.ReadDir(speciesDir)
		if err != nil {
			log.Error.Printf("catalog: cannot list regulator assemblies for %s: %v", species, err)
			continue
		}
		assemblies := make(map[string]map[string]*Experiment)
		totalExperiments := 0
		for _, ad := range assemblyDirs {
			if !ad.IsDir() {
				continue
			}
			assembly := ad.Name()
			experiments, err := loadExperiments(speciesDir, species, assembly)
			if err != nil {
				log.Error.Printf("catalog: skipping regulator assembly %s/%s: %v", species, assembly, err)
				continue
			}
			if len(experiments) > 0 {
				assemblies[assembly] = experiments
				totalExperiments += len(experiments)
			}
		}
		if len(assemblies) > 0 {
			c.Regulators[species] = assemblies
			log.Printf("catalog: loaded %d experiment(s) for species %s", totalExperiments, species)
		}
	}
}

func loadExperiments(speciesDir, species, assembly string) (map[string]*Experiment, error) {
	assemblyDir := filepath.Join(speciesDir, assembly)
	entries, err := os.ReadDir(assemblyDir)
	if err != nil {
		return nil, err
	}

	bedStems := make(map[string]bool)
	jsonStems := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".bed":
			bedStems[strings.TrimSuffix(e.Name(), ".bed")] = true
		case ".json":
			jsonStems[strings.TrimSuffix(e.Name(), ".json")] = true
		}
	}

	result := make(map[string]*Experiment)
	for stem := range jsonStems {
		if !bedStems[stem] {
			log.Printf("catalog: %s/%s: skipping %s.json with no sibling BED", species, assembly, stem)
			continue
		}
		jsonPath := filepath.Join(assemblyDir, stem+".json")
		bedPath := filepath.Join(assemblyDir, stem+".bed")

		data, err := os.ReadFile(jsonPath)
		if err != nil {
			log.Error.Printf("catalog: cannot read %s: %v", jsonPath, err)
			continue
		}
		var objs []map[string]any
		if err := json.Unmarshal(data, &objs); err != nil {
			log.Error.Printf("catalog: malformed %s: %v", jsonPath, err)
			continue
		}
		absJSON, err := filepath.Abs(jsonPath)
		if err != nil {
			absJSON = jsonPath
		}
		for _, obj := range objs {
			idVal, ok := obj["id"].(string)
			if !ok || idVal == "" {
				log.Error.Printf("catalog: %s: experiment object missing string \"id\"", jsonPath)
				continue
			}
			obj["file"] = absJSON
			result[idVal] = &Experiment{
				ID:       idVal,
				Species:  species,
				Assembly: assembly,
				BEDFile:  bedPath,
				JSONFile: jsonPath,
				Fields:   obj,
			}
		}
	}
	return result, nil
}
